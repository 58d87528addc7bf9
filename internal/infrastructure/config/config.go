// Package config provides configuration management for pastor with Viper integration.
package config

// Config represents the complete configuration for pastor.
type Config struct {
	History   HistoryConfig   `mapstructure:"history" toml:"history" json:"history"`
	Clipboard ClipboardConfig `mapstructure:"clipboard" toml:"clipboard" json:"clipboard"`
	Storage   StorageConfig   `mapstructure:"storage" toml:"storage" json:"storage"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
}

// HistoryConfig bounds the clipboard history.
type HistoryConfig struct {
	// MaxItems is the number of entries kept; values outside 20..1000 are clamped.
	MaxItems int `mapstructure:"max_items" toml:"max_items" json:"max_items" jsonschema:"minimum=20,maximum=1000,default=20"`
}

// ClipboardConfig controls clipboard polling.
type ClipboardConfig struct {
	// PollIntervalMs is the clipboard polling period in milliseconds.
	PollIntervalMs int `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" jsonschema:"minimum=100,maximum=60000,default=1000"`
}

// StorageConfig controls the encrypted history file.
type StorageConfig struct {
	// Cipher is the AEAD used to seal the history file. Changing it makes
	// existing history unreadable.
	Cipher string `mapstructure:"cipher" toml:"cipher" json:"cipher" jsonschema:"enum=aes-256-gcm,enum=xchacha20-poly1305,default=aes-256-gcm"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	// EnableFileLog also writes the watcher's logs to a rotated file in the state directory.
	EnableFileLog bool `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int  `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int  `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAge        int  `mapstructure:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0"`
}
