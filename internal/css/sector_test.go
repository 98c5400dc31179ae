package css

import "testing"

func TestDecryptSectorSkipsWhenCMIAllClear(t *testing.T) {
	sector := make([]byte, DefaultBlockSize)
	for i := range sector {
		sector[i] = byte(i)
	}
	original := append([]byte(nil), sector...)

	cmi := []byte{0x00}
	key := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	DecryptSector(sector, cmi, key, 1, DefaultBlockSize)

	for i, b := range sector {
		if b != original[i] {
			t.Fatalf("sector[%d] changed with all-clear CMI: %#x != %#x", i, b, original[i])
		}
	}
}

func TestDecryptSectorSkipsWhenKeyAllZero(t *testing.T) {
	sector := make([]byte, DefaultBlockSize)
	for i := range sector {
		sector[i] = byte(i)
	}
	original := append([]byte(nil), sector...)

	cmi := []byte{0x80}
	key := make([]byte, 5)

	DecryptSector(sector, cmi, key, 1, DefaultBlockSize)

	for i, b := range sector {
		if b != original[i] {
			t.Fatalf("sector[%d] changed with all-zero key: %#x != %#x", i, b, original[i])
		}
	}
}

func TestDecryptSectorLeavesHeaderUntouched(t *testing.T) {
	sector := make([]byte, DefaultBlockSize)
	for i := range sector {
		sector[i] = byte(i)
	}
	sector[pesScramblingHeaderOffset] = 0x30 // scrambling control set, indicates encrypted
	original := append([]byte(nil), sector...)

	cmi := []byte{0x80}
	key := []byte{0x11, 0x22, 0x33, 0x44, 0x55}

	DecryptSector(sector, cmi, key, 1, DefaultBlockSize)

	for i := 0; i < scrambledPayloadOffset; i++ {
		if sector[i] != original[i] {
			t.Fatalf("header byte %d changed: %#x != %#x", i, sector[i], original[i])
		}
	}

	changed := false
	for i := scrambledPayloadOffset; i < DefaultBlockSize; i++ {
		if sector[i] != original[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Fatal("expected payload bytes to change when sector is marked encrypted")
	}
}

func TestSectorIsEncryptedRequiresScramblingControlBit(t *testing.T) {
	sector := make([]byte, DefaultBlockSize)
	sector[pesScramblingHeaderOffset] = 0x00 // scrambling control clear

	key := [5]byte{0x01, 0x02, 0x03, 0x04, 0x05}
	if sectorIsEncrypted(0x80, key, sector) {
		t.Fatal("sectorIsEncrypted() = true with scrambling control clear, want false")
	}
}
