// Package testdata provides embedded EDIFACT test interchanges shared
// across the codec's test suites.
package testdata

import "embed"

//go:embed *.edi malformed/*.edi
var FS embed.FS

// Message file names.
const (
	FileUtilmdAnmeldung  = "utilmd_anmeldung.edi"
	FileMalformedTrunc   = "malformed/truncated.edi"
	FileMalformedEmpty   = "malformed/empty.edi"
)

// LoadUtilmdAnmeldung loads a single-message UTILMD registration
// interchange (PID 55001-style workflow shape) with one SG4/SEQ/LOC
// repetition.
func LoadUtilmdAnmeldung() ([]byte, error) {
	return FS.ReadFile(FileUtilmdAnmeldung)
}

// LoadMalformedTruncated loads an interchange cut off mid-message, with
// no UNT/UNZ trailers.
func LoadMalformedTruncated() ([]byte, error) {
	return FS.ReadFile(FileMalformedTrunc)
}

// LoadMalformedEmpty loads a zero-byte input.
func LoadMalformedEmpty() ([]byte, error) {
	return FS.ReadFile(FileMalformedEmpty)
}
