package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidadrb/padron/pkg/config"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "padron"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "padron"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "padron", "logs"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Parse defaults
		assert.Equal(t, "permissive", cfg.Parse.NameSplit)

		// OCR defaults
		assert.False(t, cfg.OCR.Enabled)
		assert.Equal(t, "tesseract", cfg.OCR.Command)
		assert.Equal(t, "spa", cfg.OCR.Language)

		// Export defaults
		assert.Equal(t, "xlsx", cfg.Export.Format)
		assert.Equal(t, 20, cfg.Export.TopNames)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)
	})
}

func TestOptionParseNameSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets strict",
			input:    "strict",
			expected: "strict",
		},
		{
			name:     "normalizes case and whitespace",
			input:    "  STRICT ",
			expected: "strict",
		},
		{
			name:     "rejects unknown rule",
			input:    "fuzzy",
			expected: "permissive", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptParseNameSplit(tt.input)})
			assert.Equal(t, tt.expected, cfg.Parse.NameSplit)
		})
	}
}

func TestOptionOCR(t *testing.T) {
	t.Run("enables ocr", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptOCREnabled(true)})
		assert.True(t, cfg.OCR.Enabled)
	})

	t.Run("sets command and language", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptOCRCommand("  tesseract-5 "),
			config.OptOCRLanguage("spa+eng"),
		})
		assert.Equal(t, "tesseract-5", cfg.OCR.Command)
		assert.Equal(t, "spa+eng", cfg.OCR.Language)
	})

	t.Run("ignores empty command", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptOCRCommand("   ")})
		assert.Equal(t, "tesseract", cfg.OCR.Command)
	})
}

func TestOptionExport(t *testing.T) {
	t.Run("sets csv format", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptExportFormat("csv")})
		assert.Equal(t, "csv", cfg.Export.Format)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptExportFormat("pdf")})
		assert.Equal(t, "xlsx", cfg.Export.Format)
	})

	t.Run("rejects non-positive top names", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptExportTopNames(0)})
		assert.Equal(t, 20, cfg.Export.TopNames)

		cfg.Update([]config.Option{config.OptExportTopNames(5)})
		assert.Equal(t, 5, cfg.Export.TopNames)
	})
}

func TestOptionLog(t *testing.T) {
	tests := []struct {
		name     string
		opt      config.Option
		check    func(*config.Config) string
		expected string
	}{
		{
			name:     "sets text format",
			opt:      config.OptLogFormat("text"),
			check:    func(c *config.Config) string { return c.Log.Format },
			expected: "text",
		},
		{
			name:     "rejects invalid format",
			opt:      config.OptLogFormat("xml"),
			check:    func(c *config.Config) string { return c.Log.Format },
			expected: "json",
		},
		{
			name:     "sets debug level",
			opt:      config.OptLogLevel("debug"),
			check:    func(c *config.Config) string { return c.Log.Level },
			expected: "debug",
		},
		{
			name:     "rejects invalid level",
			opt:      config.OptLogLevel("verbose"),
			check:    func(c *config.Config) string { return c.Log.Level },
			expected: "info",
		},
		{
			name:     "sets stderr destination",
			opt:      config.OptLogDestination("stderr"),
			check:    func(c *config.Config) string { return c.Log.Destination },
			expected: "stderr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.expected, tt.check(cfg))
		})
	}
}

func TestToOptions(t *testing.T) {
	t.Run("round-trips persistent fields", func(t *testing.T) {
		orig := config.New()
		orig.Update([]config.Option{
			config.OptParseNameSplit("strict"),
			config.OptOCREnabled(true),
			config.OptExportFormat("csv"),
			config.OptLogLevel("debug"),
		})

		restored := config.New()
		restored.Update(orig.ToOptions())

		assert.Equal(t, "strict", restored.Parse.NameSplit)
		assert.True(t, restored.OCR.Enabled)
		assert.Equal(t, "csv", restored.Export.Format)
		assert.Equal(t, "debug", restored.Log.Level)
	})

	t.Run("excludes home dir", func(t *testing.T) {
		orig := config.New()
		orig.Update([]config.Option{config.OptHomeDir("/home/user")})

		restored := config.New()
		restored.Update(orig.ToOptions())
		assert.Empty(t, restored.HomeDir)
	})
}
