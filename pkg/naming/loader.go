package naming

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and merges every YAML scheme overlay
// it finds, in lexical path order, on top of the default scheme. When fsys is
// nil or holds no overlay files the default scheme is returned.
func LoadFS(fsys fs.FS) (Scheme, error) {
	scheme := Default()
	if fsys == nil {
		return scheme.Normalized(), nil
	}

	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemeFile(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return Scheme{}, fmt.Errorf("naming: walk overlays: %w", err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return Scheme{}, fmt.Errorf("naming: read %s: %w", path, err)
		}
		overlay, err := Parse(data)
		if err != nil {
			return Scheme{}, fmt.Errorf("naming: file %s: %w", path, err)
		}
		scheme = scheme.Merged(overlay)
	}

	return scheme.Normalized(), nil
}

// Parse decodes a single YAML overlay document. Unknown keys are rejected so
// typos in overlay files surface as errors instead of silently keeping
// defaults.
func Parse(data []byte) (Scheme, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Scheme{}, fmt.Errorf("empty overlay document")
	}

	var overlay Scheme
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&overlay); err != nil {
		return Scheme{}, fmt.Errorf("parse overlay: %w", err)
	}
	return overlay, nil
}

func isSchemeFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
