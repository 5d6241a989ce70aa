// Package processor runs the per-photo pipeline: extract metadata with
// exiftool, compose a title, write it back and classify the result.
//
// Files are handled strictly one at a time. A failure on one file is logged,
// recorded in the journal when one is attached, and never stops the run.
// ExpandTargets turns command-line targets (paths, globs, recursive roots)
// into the file list ProcessTargets consumes.
package processor
