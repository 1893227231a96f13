package iopdf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unidadrb/padron/internal/iopdf"
)

func TestExtractTextGarbage(t *testing.T) {
	e := iopdf.NewTextExtractor()

	tests := []struct {
		name string
		data []byte
	}{
		{"not a pdf", []byte("plain text, no pdf header")},
		{"empty payload", nil},
		{"truncated header", []byte("%PDF-1.4")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := e.ExtractText(context.Background(), tt.data)
			// Malformed payloads degrade to an error, never a panic.
			assert.Error(t, err)
			assert.Empty(t, text)
		})
	}
}
