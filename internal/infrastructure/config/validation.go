package config

import (
	"fmt"
	"strings"

	"github.com/bnema/pastor/internal/infrastructure/codec"
)

// validateConfig performs validation of the normalized configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateHistory(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateHistory(config *Config) []string {
	if config.History.MaxItems < MinMaxItems || config.History.MaxItems > MaxMaxItems {
		return []string{fmt.Sprintf("history.max_items must be between %d and %d", MinMaxItems, MaxMaxItems)}
	}
	return nil
}

func validateStorage(config *Config) []string {
	if _, err := codec.ParseCipher(config.Storage.Cipher); err != nil {
		return []string{fmt.Sprintf("storage.cipher must be one of %q, %q (got %q)",
			codec.CipherAESGCM, codec.CipherXChaCha20Poly1305, config.Storage.Cipher)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "warning": true,
		"error": true, "disabled": true, "off": true,
	}
	if !validLevels[config.Logging.Level] {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a valid level", config.Logging.Level))
	}

	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors, "logging.format must be \"console\" or \"json\"")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}
