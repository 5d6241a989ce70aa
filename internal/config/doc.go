// Package config loads, normalizes, and validates pregoogle configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the PREGOOGLE_EXIFTOOL
// environment fallback. The Config type centralizes every knob the title
// pipeline and CLI need: the exiftool binary and charsets, keyword list
// files, the title locale, journal and lock locations, and logging.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical charset labels, and clear validation errors.
package config
