package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptParseNameSplit sets the name-splitting rule for roster lines.
// Valid values: "permissive", "strict".
func OptParseNameSplit(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Parse.NameSplit", s) {
			c.Parse.NameSplit = s
		}
	}
}

// OptOCREnabled turns the OCR fallback for text-less PDFs on or off.
func OptOCREnabled(b bool) Option {
	return func(c *Config) {
		c.OCR.Enabled = b
	}
}

// OptOCRCommand sets the OCR executable to invoke.
func OptOCRCommand(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("OCR Command", s) {
			c.OCR.Command = s
		}
	}
}

// OptOCRLanguage sets the OCR recognition language hint.
func OptOCRLanguage(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("OCR Language", s) {
			c.OCR.Language = s
		}
	}
}

// OptExportFormat sets the export file format.
// Valid values: "xlsx", "csv".
func OptExportFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Export.Format", s) {
			c.Export.Format = s
		}
	}
}

// OptExportTopNames sets how many name-frequency rows summaries print.
func OptExportTopNames(i int) Option {
	return func(c *Config) {
		if isValidInt("Export TopNames", i) {
			c.Export.TopNames = i
		}
	}
}

// OptLogFormat sets the log format. Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the log level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where logs go.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory used to derive config, cache and
// log paths. Set once by the CLI at startup.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
