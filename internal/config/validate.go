package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"pregoogle/internal/charset"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateExifTool(); err != nil {
		return err
	}
	if err := c.validateTitle(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateExifTool() error {
	if c.ExifTool.Binary == "" {
		return errors.New("exiftool.binary must be set (or export PREGOOGLE_EXIFTOOL)")
	}
	if c.ExifTool.TimeoutSeconds < 0 {
		return errors.New("exiftool.timeout_seconds must be zero (no timeout) or positive")
	}
	if _, err := charset.ExifToolName(c.ExifTool.WriteCharset); err != nil {
		return fmt.Errorf("exiftool.write_charset: %w", err)
	}
	return nil
}

func (c *Config) validateTitle() error {
	if _, err := language.Parse(c.Title.Locale); err != nil {
		return fmt.Errorf("title.locale: invalid language tag %q: %w", c.Title.Locale, err)
	}
	if _, _, err := charset.Lookup(c.Title.LegacyCharset); err != nil {
		return fmt.Errorf("title.legacy_charset: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use auto, console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
