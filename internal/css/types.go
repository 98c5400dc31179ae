package css

import "fmt"

// KeyType selects the challenge permutation row and variant permutation row
// used by the authentication cipher.
type KeyType int

const (
	// KeyTypeAuthentication is used for the initial AGID handshake key.
	KeyTypeAuthentication KeyType = iota
	// KeyTypeBus1 is used for the first of the two bus key exchange rounds.
	KeyTypeBus1
	// KeyTypeBus2 is used for the second of the two bus key exchange rounds.
	KeyTypeBus2
)

func (kt KeyType) String() string {
	switch kt {
	case KeyTypeAuthentication:
		return "authentication"
	case KeyTypeBus1:
		return "bus1"
	case KeyTypeBus2:
		return "bus2"
	default:
		return fmt.Sprintf("KeyType(%d)", int(kt))
	}
}

// SizeError reports that a buffer passed to the core did not have the
// fixed length the operation requires.
type SizeError struct {
	Field    string
	Expected int
	Actual   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("css: invalid size for %s: expected %d bytes, got %d", e.Field, e.Expected, e.Actual)
}

// DiscKeyRecord is the result of unscrambling a drive's disc key response
// with the session's bus key.
type DiscKeyRecord struct {
	DataLength uint16
	Key        [2048]byte
}

// TitleKeyRecord is the result of unscrambling a drive's title key response
// with the session's bus key.
type TitleKeyRecord struct {
	DataLength uint16
	CMI        byte
	Key        [5]byte
}

// RPCState carries the region-playback-control state reported by a drive.
// RegionMask has a bit set for every region the drive currently refuses to
// play (1 = blocked).
type RPCState struct {
	RegionMask byte
}

// LeadInCopyright carries the region-restriction byte read from a disc's
// lead-in copyright information. RegionInformation has a bit set for every
// region the disc is restricted to (1 = restricted).
type LeadInCopyright struct {
	RegionInformation byte
}
