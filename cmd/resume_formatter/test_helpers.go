package main

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_formatter binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_formatter"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// writeFixtureDocx writes a minimal .docx whose body holds the given
// paragraph texts, one w:p per entry.
func writeFixtureDocx(t *testing.T, path string, paragraphs ...string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}

	body := ""
	for _, text := range paragraphs {
		body += fmt.Sprintf("<w:p><w:r><w:t>%s</w:t></w:r></w:p>", text)
	}
	xml := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`
	if _, err := w.Write([]byte(xml)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close fixture zip: %v", err)
	}
}
