// Package exiftool runs the exiftool CLI to extract XML metadata and to write
// a title into XMP:Description, and classifies what exiftool printed back.
//
// Invocation goes through the Executor interface so tests can substitute a
// stub. Output classification lives behind Classifier; the default
// PatternClassifier matches exiftool's "image files updated" summary lines.
package exiftool
