// Package main hosts the pregoogle CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration, builds the exiftool
// client, keyword lists and title composer, and hands file targets to the
// processor. Running the binary with bare arguments keeps the historical
// "pregoogle filename [exiftool] [simulate]" form working.
//
// Keep this package lean: add behaviour to the internal packages first, then
// surface it through a command or flag here.
package main
