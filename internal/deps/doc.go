// Package deps reports whether the external binaries pregoogle shells out to
// are installed.
package deps
