// Package metadata decodes disc-level descriptive fields that are useful
// when labeling recovered keys but never participate in any cryptographic
// operation.
package metadata

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// DecodeVolumeLabel decodes the 32-byte volume identifier field of an
// ISO 9660 primary volume descriptor, which is specified as space-padded
// ISO-8859-1, and trims the padding.
func DecodeVolumeLabel(raw [32]byte) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw[:])
	if err != nil {
		decoded = raw[:]
	}
	decoded = bytes.TrimRight(decoded, "\x00")
	return strings.TrimRight(string(decoded), " ")
}
