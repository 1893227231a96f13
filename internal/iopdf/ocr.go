package iopdf

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// OCR recognizes text from rendered page images of a PDF. It is an
// external collaborator: pages are rasterized with pdftoppm and fed to
// the configured OCR engine with a fixed language hint.
type OCR struct {
	// Command is the OCR executable, normally "tesseract".
	Command string
	// Language is the recognition language hint, e.g. "spa".
	Language string
}

// NewOCR returns an OCR collaborator.
func NewOCR(command, language string) *OCR {
	return &OCR{Command: command, Language: language}
}

// ExtractText rasterizes the PDF pages and runs the OCR engine on each
// image, concatenating the recognized text in page order.
func (o *OCR) ExtractText(ctx context.Context, data []byte) (string, error) {
	dir, err := os.MkdirTemp("", "padron-ocr-")
	if err != nil {
		return "", OCRError(o.Command, err)
	}
	defer os.RemoveAll(dir)

	pdfPath := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(pdfPath, data, 0600); err != nil {
		return "", OCRError(o.Command, err)
	}

	// Rasterize at 300 dpi, one PNG per page.
	render := exec.CommandContext(
		ctx, "pdftoppm", "-r", "300", "-png",
		pdfPath, filepath.Join(dir, "page"),
	)
	if err := render.Run(); err != nil {
		return "", OCRError("pdftoppm", err)
	}

	pages, err := filepath.Glob(filepath.Join(dir, "page*.png"))
	if err != nil {
		return "", OCRError(o.Command, err)
	}
	sort.Strings(pages)

	var b strings.Builder
	for _, page := range pages {
		cmd := exec.CommandContext(
			ctx, o.Command, page, "stdout", "-l", o.Language,
		)
		out, err := cmd.Output()
		if err != nil {
			return "", OCRError(o.Command, err)
		}
		b.Write(out)
		b.WriteString("\n")
	}
	return b.String(), nil
}
