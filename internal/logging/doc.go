// Package logging assembles structured slog loggers and formatting helpers used
// across pregoogle.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so per-file processing can tag
// log lines with the run session and the file being titled. When a log
// directory is configured, records are also appended to a JSON log file.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
