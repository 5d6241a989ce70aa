package exiftool

import "strings"

// ExtractArgs asks exiftool for every tag of path as XML, reading IPTC
// strings as UTF-8 and forcing empty tags to be listed.
func ExtractArgs(path string) []string {
	return []string{fileArg(path), "-charset", "iptc=utf8", "-ex", "-X", "-f"}
}

// WriteArgs sets XMP:Description in place, keeping the file's modification
// time. title must already be encoded in writeCharset, which must be an
// exiftool charset name such as "cp1252" or "UTF8".
func WriteArgs(path, title, writeCharset string) []string {
	return []string{
		fileArg(path),
		"-overwrite_original_in_place",
		"-P",
		"-charset", writeCharset,
		"-ex",
		"-XMP:Description=" + title,
	}
}

// fileArg keeps a leading dash in a file name from being read as an option.
func fileArg(path string) string {
	if strings.HasPrefix(path, "-") {
		return "./" + path
	}
	return path
}
