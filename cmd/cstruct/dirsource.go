package main

import (
	"os"
	"path/filepath"

	"github.com/structkit/cstruct/parser"
)

// dirSource resolves quoted includes relative to the including file,
// rooted at a base directory for entry files.
type dirSource struct {
	root string
}

var _ parser.Source = (*dirSource)(nil)

func (s *dirSource) Resolve(fromUnit, include string) (string, string, error) {
	base := s.root
	if fromUnit != "" {
		base = filepath.Dir(fromUnit)
	}
	unit := filepath.Clean(filepath.Join(base, include))
	data, err := os.ReadFile(unit)
	if err != nil {
		return "", "", err
	}
	return unit, string(data), nil
}

// headerEntries lists the *.h files directly inside dir, relative to it.
func headerEntries(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.h"))
	if err != nil {
		return nil, err
	}
	entries := make([]string, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, filepath.Base(m))
	}
	return entries, nil
}
