// Package iopdf extracts plain text from roster PDFs.
//
// The primary path reads the PDF's text layer. For scanned rosters
// without a text layer an optional OCR collaborator shells out to an
// external engine. Both are best-effort: the loader treats a failure
// as an empty source, extraction errors never propagate past the load
// boundary.
package iopdf

import (
	"bytes"
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor reads the text layer of a PDF.
type TextExtractor struct{}

// NewTextExtractor returns the text-layer extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the concatenated text of all pages, one page per
// line group. Pages without extractable text contribute nothing.
func (e *TextExtractor) ExtractText(
	ctx context.Context, data []byte,
) (text string, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = ExtractPanicError(r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", ExtractError(err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			// A broken page does not fail the document.
			continue
		}
		for _, row := range rows {
			var words []string
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			line := strings.TrimSpace(strings.Join(words, " "))
			if line != "" {
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}
	return b.String(), nil
}
