// Package pdftext extracts the embedded text layer from digitally
// generated PDFs. No OCR is involved: a scanned-image PDF with no text
// layer yields an empty result, and the caller decides whether to fall
// back to the image pipeline.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ExtractText returns the concatenated plain text of every page in the
// PDF at path, pages separated by newlines.
//
// The file is validated with pdfcpu before extraction so a corrupt or
// non-PDF file surfaces as an error rather than as silently empty text.
// Per-page extraction failures are skipped; a well-formed PDF whose pages
// carry no text layer returns "" with a nil error.
func ExtractText(path string) (string, error) {
	if err := api.ValidateFile(path, nil); err != nil {
		return "", fmt.Errorf("not a readable PDF: %w", err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return n, nil
}
