package io

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, `{"a":1}`); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	if got := buf.String(); got != "{\"a\":1}\n" {
		t.Errorf("WriteText() wrote %q", got)
	}
}

func TestExportText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "deck.json")
	if err := ExportText(path, `{"a":1}`); err != nil {
		t.Fatalf("ExportText() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "{\"a\":1}\n" {
		t.Errorf("file content = %q", data)
	}
}
