// Package keywords holds the curated keyword lists that decide which IPTC
// keywords may appear in a title, in which order, and how they are tidied.
//
// Both lists are newline-delimited text loaded once at startup into immutable
// values: an AcceptedList (membership and priority) and a TidyList (suffixes
// stripped before rendering). Built-in lists are embedded for runs that do
// not configure their own files.
package keywords
