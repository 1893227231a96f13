// Package config provides configuration management for padron.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use PADRON_ prefix with underscores for nesting:
//
//	PADRON_PARSE_NAME_SPLIT=strict
//	PADRON_OCR_ENABLED=true
//	PADRON_LOG_LEVEL=debug
package config

// Config represents the complete padron configuration.
type Config struct {
	// Parse contains settings for free-text roster line parsing.
	Parse ParseConfig `mapstructure:"parse" yaml:"parse"`

	// OCR contains settings for the optional OCR fallback on PDFs
	// whose text layer yields no usable rows.
	OCR OCRConfig `mapstructure:"ocr" yaml:"ocr"`

	// Export contains settings for report exports.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories
	// reside. It must be set by CLI during init, there is no default
	// value for it.
	HomeDir string
}

// ParseConfig contains settings for free-text line parsing.
type ParseConfig struct {
	// NameSplit selects the name-splitting rule for roster lines.
	// Valid values: "permissive" (surname takes two tokens when three
	// or more remain) or "strict" (surname takes one token).
	NameSplit string `mapstructure:"name_split" yaml:"name_split"`
}

// OCRConfig contains settings for the OCR collaborator. OCR is invoked
// only when PDF text extraction yields zero usable rows.
type OCRConfig struct {
	// Enabled turns the OCR fallback on. It requires the external
	// command to be installed.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Command is the OCR executable to invoke.
	Command string `mapstructure:"command" yaml:"command"`

	// Language is the recognition language hint, fixed to the roster's
	// locale.
	Language string `mapstructure:"language" yaml:"language"`
}

// ExportConfig contains settings for exports of unified tables and
// reconciliation reports.
type ExportConfig struct {
	// Format of the export file. Valid values: "xlsx", "csv".
	Format string `mapstructure:"format" yaml:"format"`

	// TopNames is how many surname/given-name frequency rows the
	// summary prints.
	TopNames int `mapstructure:"top_names" yaml:"top_names"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Parse: ParseConfig{
			NameSplit: "permissive",
		},
		OCR: OCRConfig{
			Enabled:  false,
			Command:  "tesseract",
			Language: "spa",
		},
		Export: ExportConfig{
			Format:   "xlsx",
			TopNames: 20,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
