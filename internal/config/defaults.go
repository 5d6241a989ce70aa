package config

const (
	defaultExifToolBinary = "exiftool"
	defaultWriteCharset   = "cp1252"
	defaultLegacyCharset  = "windows-1252"
	defaultTitleLocale    = "nb-NO"
	defaultLogDir         = "~/.local/share/pregoogle/logs"
	defaultLockPath       = "~/.local/share/pregoogle/pregoogle.lock"
	defaultJournalPath    = "~/.local/share/pregoogle/journal.db"
	defaultLogFormat      = "auto"
	defaultLogLevel       = "info"
)

var defaultExtensions = []string{".jpg", ".jpeg"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			LockPath: defaultLockPath,
		},
		ExifTool: ExifTool{
			WriteCharset: defaultWriteCharset,
		},
		Title: Title{
			Locale:        defaultTitleLocale,
			LegacyCharset: defaultLegacyCharset,
		},
		Files: Files{
			Extensions: append([]string(nil), defaultExtensions...),
		},
		Journal: Journal{
			Enabled: true,
			Path:    defaultJournalPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
