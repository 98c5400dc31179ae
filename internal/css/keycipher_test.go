package css

import "testing"

func TestDecryptKeyIsDeterministic(t *testing.T) {
	cryptoKey := [5]byte{0x01, 0x23, 0x45, 0x67, 0x89}
	encrypted := [5]byte{0x9a, 0xbc, 0xde, 0xf0, 0x11}

	first := DecryptKey(0x00, cryptoKey, encrypted)
	second := DecryptKey(0x00, cryptoKey, encrypted)

	if first != second {
		t.Fatalf("DecryptKey is not deterministic: %x != %x", first, second)
	}
}

func TestDecryptKeyInvertChangesOutput(t *testing.T) {
	cryptoKey := [5]byte{0x01, 0x23, 0x45, 0x67, 0x89}
	encrypted := [5]byte{0x9a, 0xbc, 0xde, 0xf0, 0x11}

	normal := DecryptKey(0x00, cryptoKey, encrypted)
	inverted := DecryptKey(0xff, cryptoKey, encrypted)

	if normal == inverted {
		t.Fatal("expected invert=0xff to change the output")
	}
}

func TestDecryptTitleKeyAliasesDecryptKey(t *testing.T) {
	discKey := [5]byte{0x11, 0x22, 0x33, 0x44, 0x55}
	encrypted := [5]byte{0x66, 0x77, 0x88, 0x99, 0xaa}

	if got, want := DecryptTitleKey(discKey, encrypted), DecryptKey(0x00, discKey, encrypted); got != want {
		t.Fatalf("DecryptTitleKey() = %x, want %x", got, want)
	}
}
