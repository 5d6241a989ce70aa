// Package title composes the human-readable photo title from metadata fields.
//
// Precedence: caption, then object name, then the accepted keywords as a
// natural list; the headline in parentheses; the most specific location; the
// creation date as a long localized date. Parts are separated by " * " and
// double quotes are swapped for single quotes so the result survives the
// exiftool command line.
package title
