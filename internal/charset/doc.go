// Package charset repairs and converts the legacy 8-bit text that travels
// between image metadata and exiftool.
//
// Repair undoes a specific double-encoding artefact (UTF-8 bytes read back
// through an OEM code page) that turns Norwegian letters into box-drawing
// pairs. Decode and Encode move text across the legacy charsets exiftool is
// told to use on the command line.
package charset
