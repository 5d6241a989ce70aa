package charset

import (
	"fmt"
	"strings"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultLegacy is the 8-bit charset binary metadata values are decoded with.
const DefaultLegacy = "windows-1252"

// Lookup resolves a charset label ("cp1252", "latin1", "utf8", ...) to an
// encoding. Labels follow the WHATWG encoding registry.
func Lookup(label string) (encoding.Encoding, string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return charmap.Windows1252, DefaultLegacy, nil
	}
	enc, name := htmlcharset.Lookup(label)
	if enc == nil {
		return nil, "", fmt.Errorf("unknown charset %q", label)
	}
	return enc, name, nil
}

// Decode converts bytes in the labelled charset to a UTF-8 string.
func Decode(data []byte, label string) (string, error) {
	enc, _, err := Lookup(label)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", label, err)
	}
	return string(out), nil
}

// Encode converts text to the labelled charset. Text is composed to NFC first
// so decomposed letters map onto single legacy code points; runes the charset
// cannot represent become its replacement byte (0x1A for the Windows code
// pages), never an HTML character reference.
func Encode(text string, label string) (string, error) {
	enc, err := plainEncoding(label)
	if err != nil {
		return "", err
	}
	composed := norm.NFC.String(text)
	out, _, err := transform.String(encoding.ReplaceUnsupported(enc.NewEncoder()), composed)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", label, err)
	}
	return out, nil
}

// plainEncoding resolves label without the HTML form wrapper Lookup returns,
// whose encoder writes unsupported runes as "&#NNN;".
func plainEncoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return charmap.Windows1252, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q", label)
	}
	return enc, nil
}

// exifToolNames maps canonical encoding names to the -charset values exiftool
// accepts for writing.
var exifToolNames = map[string]string{
	"utf-8":          "UTF8",
	"windows-1250":   "cp1250",
	"windows-1251":   "cp1251",
	"windows-1252":   "cp1252",
	"windows-1253":   "cp1253",
	"windows-1254":   "cp1254",
	"windows-1255":   "cp1255",
	"windows-1256":   "cp1256",
	"windows-1257":   "cp1257",
	"windows-1258":   "cp1258",
	"windows-874":    "cp874",
	"ibm866":         "cp866",
	"macintosh":      "cp10000",
	"x-mac-cyrillic": "cp10007",
}

// ExifToolName returns the exiftool -charset name for label. Aliases resolve
// first, so "latin1", "iso-8859-1" and "windows-1252" all give "cp1252".
// Charsets exiftool cannot write with are an error.
func ExifToolName(label string) (string, error) {
	enc, err := plainEncoding(label)
	if err != nil {
		return "", err
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return "", fmt.Errorf("charset %q: %w", label, err)
	}
	name, ok := exifToolNames[canonical]
	if !ok {
		return "", fmt.Errorf("charset %q (%s) is not supported by exiftool", label, canonical)
	}
	return name, nil
}
