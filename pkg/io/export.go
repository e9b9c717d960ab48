package io

import (
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/deckjson/pkg/errors"
)

// WriteText writes a serialized artifact to w, followed by a newline.
func WriteText(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write output")
	}
	return nil
}

// ExportText writes a serialized artifact to the file at path, creating
// missing parent directories.
// This is a convenience wrapper around [WriteText] for file-based output.
func ExportText(path, text string) error {
	if path == "" {
		return errors.New(errors.ErrCodeInvalidPath, "output path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := WriteText(f, text); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "close %s", path)
	}
	return nil
}
