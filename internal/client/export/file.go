// Package export delivers the plain-text journal export to its destination:
// a local file or an S3 compatible bucket.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophjournal/internal/filex"
)

// Sink receives an exported journal and reports where it ended up.
type Sink interface {
	Write(ctx context.Context, name string, data []byte) (string, error)
}

// FileSink writes exports to the local filesystem. Target may be a
// directory (the suggested name is used) or a full file path. An empty
// target means the working directory.
type FileSink struct {
	Target string
}

func (s FileSink) Write(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := s.resolve(name)
	if err := filex.EnsureParent(path, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func (s FileSink) resolve(name string) string {
	if s.Target == "" {
		return name
	}
	if strings.HasSuffix(s.Target, "/") || strings.HasSuffix(s.Target, string(os.PathSeparator)) {
		return filepath.Join(s.Target, name)
	}
	if fi, err := os.Stat(s.Target); err == nil && fi.IsDir() {
		return filepath.Join(s.Target, name)
	}
	return s.Target
}

// Resolve picks a sink for a user-supplied destination. "s3://bucket/key"
// goes to S3, everything else to the filesystem.
func Resolve(target string, opts S3Options) (Sink, error) {
	if strings.HasPrefix(target, s3Scheme) {
		return NewS3Sink(target, opts)
	}
	return FileSink{Target: target}, nil
}
