// Package preflight provides readiness checks for the exiftool binary and
// the filesystem paths pregoogle writes to.
//
// These checks run in two contexts:
//   - The title command calls RunAll before processing and refuses to start
//     when a required check fails.
//   - The file processor calls CheckWritable before every non-simulated
//     write, so a read-only photo is reported without invoking exiftool.
package preflight
