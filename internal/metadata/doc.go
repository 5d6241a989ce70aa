// Package metadata reads the IPTC and EXIF fields pregoogle titles are built
// from out of exiftool's XML dump (exiftool -X).
//
// A Reader wraps one parsed document. Scalar tags resolve to the text of the
// first matching element anywhere in the document; bag tags (keywords)
// resolve to the items of the first matching element's rdf:Bag. Absent tags
// yield empty values, never errors. Base64 binary values are decoded through
// a legacy 8-bit charset, and every value passes through charset.Repair.
package metadata
