package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeExifTool(); err != nil {
		return err
	}
	if err := c.normalizeKeywords(); err != nil {
		return err
	}
	c.normalizeTitle()
	c.normalizeFiles()
	if err := c.normalizeJournal(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LockPath) == "" {
		c.Paths.LockPath = defaultLockPath
	}
	if c.Paths.LockPath, err = expandPath(c.Paths.LockPath); err != nil {
		return fmt.Errorf("paths.lock_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeExifTool() error {
	c.ExifTool.Binary = strings.TrimSpace(c.ExifTool.Binary)
	if c.ExifTool.Binary == "" {
		if value, ok := os.LookupEnv("PREGOOGLE_EXIFTOOL"); ok {
			c.ExifTool.Binary = strings.TrimSpace(value)
		}
	}
	if c.ExifTool.Binary == "" {
		c.ExifTool.Binary = defaultExifToolBinary
	}
	// A bare command name is resolved through PATH; only expand real paths.
	if strings.ContainsAny(c.ExifTool.Binary, `/\`) || strings.HasPrefix(c.ExifTool.Binary, "~") {
		expanded, err := expandPath(c.ExifTool.Binary)
		if err != nil {
			return fmt.Errorf("exiftool.binary: %w", err)
		}
		c.ExifTool.Binary = expanded
	}
	c.ExifTool.WriteCharset = strings.ToLower(strings.TrimSpace(c.ExifTool.WriteCharset))
	if c.ExifTool.WriteCharset == "" {
		c.ExifTool.WriteCharset = defaultWriteCharset
	}
	return nil
}

func (c *Config) normalizeKeywords() error {
	var err error
	if c.Keywords.AcceptedFile, err = expandPath(strings.TrimSpace(c.Keywords.AcceptedFile)); err != nil {
		return fmt.Errorf("keywords.accepted_file: %w", err)
	}
	if c.Keywords.TidyFile, err = expandPath(strings.TrimSpace(c.Keywords.TidyFile)); err != nil {
		return fmt.Errorf("keywords.tidy_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeTitle() {
	c.Title.Locale = strings.TrimSpace(c.Title.Locale)
	if c.Title.Locale == "" {
		c.Title.Locale = defaultTitleLocale
	}
	c.Title.LegacyCharset = strings.ToLower(strings.TrimSpace(c.Title.LegacyCharset))
	if c.Title.LegacyCharset == "" {
		c.Title.LegacyCharset = defaultLegacyCharset
	}
}

func (c *Config) normalizeFiles() {
	exts := make([]string, 0, len(c.Files.Extensions))
	seen := make(map[string]struct{}, len(c.Files.Extensions))
	for _, ext := range c.Files.Extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	if len(exts) == 0 {
		exts = append(exts, defaultExtensions...)
	}
	c.Files.Extensions = exts
}

func (c *Config) normalizeJournal() error {
	if strings.TrimSpace(c.Journal.Path) == "" {
		c.Journal.Path = defaultJournalPath
	}
	var err error
	if c.Journal.Path, err = expandPath(c.Journal.Path); err != nil {
		return fmt.Errorf("journal.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
