package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "xchacha", mutate: func(c *Config) { c.Storage.Cipher = "xchacha20-poly1305" }},
		{name: "unknown cipher", mutate: func(c *Config) { c.Storage.Cipher = "des" }, wantErr: "storage.cipher"},
		{name: "max items too large", mutate: func(c *Config) { c.History.MaxItems = 5000 }, wantErr: "history.max_items"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "negative backups", mutate: func(c *Config) { c.Logging.MaxBackups = -1 }, wantErr: "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
