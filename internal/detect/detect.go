// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect classifies files as PDFs by extension and magic bytes.
package detect

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// magic is the signature every PDF file starts with.
const magic = "%PDF-"

// IsPDF reports whether path has a .pdf extension (any case) and begins with
// the %PDF- signature. The extension is checked first so non-PDF files are never opened.
// I/O errors yield false.
func IsPDF(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, len(magic))
	if _, err := io.ReadFull(f, head); err != nil {
		return false
	}
	return string(head) == magic
}
