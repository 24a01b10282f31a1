// Package emit writes rendered files to an output directory. Writes are
// all-or-nothing: every file is staged to a temporary sibling first and the
// staged set is renamed into place only once all stages succeeded, so a
// failing render or a full disk never leaves a partial skeleton behind.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kissoflove/mvcgen/pkg/render"
)

// Existing reports which of the given files already exist under dir.
func Existing(dir string, files []render.File) ([]string, error) {
	var found []string
	for _, file := range files {
		target := filepath.Join(dir, file.FileName)
		_, err := os.Stat(target)
		switch {
		case err == nil:
			found = append(found, file.FileName)
		case os.IsNotExist(err):
			continue
		default:
			return nil, fmt.Errorf("emit: stat %q: %w", target, err)
		}
	}
	return found, nil
}

// WriteFiles writes every rendered file under dir, creating the directory
// if needed.
func WriteFiles(dir string, files []render.File) error {
	if len(files) == 0 {
		return nil
	}
	for _, file := range files {
		if err := validateFileName(file.FileName); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("emit: create output dir %q: %w", dir, err)
	}

	staged := make([]string, 0, len(files))
	cleanup := func() {
		for _, path := range staged {
			os.Remove(path)
		}
	}

	for _, file := range files {
		tmp, err := os.CreateTemp(dir, "."+file.FileName+".*")
		if err != nil {
			cleanup()
			return fmt.Errorf("emit: stage %q: %w", file.FileName, err)
		}
		if _, err := tmp.Write(file.Contents); err != nil {
			tmp.Close()
			cleanup()
			os.Remove(tmp.Name())
			return fmt.Errorf("emit: stage %q: %w", file.FileName, err)
		}
		if err := tmp.Close(); err != nil {
			cleanup()
			os.Remove(tmp.Name())
			return fmt.Errorf("emit: stage %q: %w", file.FileName, err)
		}
		staged = append(staged, tmp.Name())
	}

	for i, file := range files {
		if err := os.Rename(staged[i], filepath.Join(dir, file.FileName)); err != nil {
			cleanup()
			return fmt.Errorf("emit: commit %q: %w", file.FileName, err)
		}
	}
	return nil
}

func validateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("emit: file name is empty")
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("emit: file name %q must not contain path separators", name)
	}
	return nil
}
