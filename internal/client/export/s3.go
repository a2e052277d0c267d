package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Scheme = "s3://"

var ErrBadS3Target = errors.New("expected s3://bucket[/key]")

// S3Options holds connection settings. Leave the keys empty to use the
// default AWS credential chain.
type S3Options struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Sink uploads exports with PutObject.
type S3Sink struct {
	bucket string
	key    string
	opts   S3Options
}

// NewS3Sink parses target. A key ending in "/" (or no key) is treated as a
// prefix and the export's own file name is appended.
func NewS3Sink(target string, opts S3Options) (*S3Sink, error) {
	rest, ok := strings.CutPrefix(target, s3Scheme)
	if !ok {
		return nil, ErrBadS3Target
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return nil, ErrBadS3Target
	}
	return &S3Sink{bucket: bucket, key: key, opts: opts}, nil
}

func (s *S3Sink) objectKey(name string) string {
	if s.key == "" || strings.HasSuffix(s.key, "/") {
		return s.key + name
	}
	return s.key
}

func (s *S3Sink) client(ctx context.Context) (objectPutter, error) {
	var optFns []func(*config.LoadOptions) error
	if s.opts.Region != "" {
		optFns = append(optFns, config.WithRegion(s.opts.Region))
	}
	if s.opts.AccessKey != "" {
		optFns = append(optFns, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.opts.AccessKey, s.opts.SecretKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.opts.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (s *S3Sink) Write(ctx context.Context, name string, data []byte) (string, error) {
	c, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	key := s.objectKey(name)
	_, err = c.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	return s3Scheme + s.bucket + "/" + key, nil
}
