// Package quotes serves inspirational quotes in a shuffled cycle and turns
// a user's comment on one into a journal entry.
package quotes

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalog is returned for a catalog without a usable quote.
var ErrEmptyCatalog = errors.New("quote catalog is empty")

//go:embed catalog.yaml
var builtin []byte

type Quote struct {
	Text   string `yaml:"quote" json:"quote"`
	Author string `yaml:"author" json:"author"`
}

type catalogFile struct {
	Quotes []Quote `yaml:"quotes"`
}

// ParseCatalog decodes a YAML catalog. Quotes without text are skipped;
// a missing author becomes "Unknown".
func ParseCatalog(data []byte) ([]Quote, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse quote catalog: %w", err)
	}

	out := make([]Quote, 0, len(f.Quotes))
	for _, q := range f.Quotes {
		q.Text = strings.TrimSpace(q.Text)
		q.Author = strings.TrimSpace(q.Author)
		if q.Text == "" {
			continue
		}
		if q.Author == "" {
			q.Author = "Unknown"
		}
		out = append(out, q)
	}
	if len(out) == 0 {
		return nil, ErrEmptyCatalog
	}
	return out, nil
}

// DefaultCatalog returns the built-in quotes.
func DefaultCatalog() []Quote {
	qs, err := ParseCatalog(builtin)
	if err != nil {
		panic(fmt.Sprintf("built-in quote catalog: %v", err))
	}
	return qs
}

// LoadCatalog reads a catalog file, or the built-in one when path is empty.
func LoadCatalog(path string) ([]Quote, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quote catalog: %w", err)
	}
	return ParseCatalog(data)
}
