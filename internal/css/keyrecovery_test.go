package css

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// t1Inverse builds the inverse permutation of t1Table so a test can run the
// key cipher's mixing pass backwards and construct a synthetic disc key
// block whose slots decrypt to a known key.
func t1Inverse() [256]byte {
	var inv [256]byte
	for i, v := range t1Table {
		inv[v] = byte(i)
	}
	return inv
}

// encryptWithKeystream is the mathematical inverse of mixKeystream: given
// the same 5-byte keystream k, it recovers the ciphertext e that
// mixKeystream(k, e) would decrypt back to plaintext p.
func encryptWithKeystream(inv [256]byte, k, p [5]byte) [5]byte {
	var d [5]byte
	d[0] = inv[p[0]^k[0]]
	d[1] = inv[p[1]^k[1]^d[0]]
	d[2] = inv[p[2]^k[2]^d[1]]
	d[3] = inv[p[3]^k[3]^d[2]]
	d[4] = inv[p[4]^k[4]^d[3]]

	var e [5]byte
	e[0] = inv[d[0]^k[0]^d[4]]
	e[1] = inv[d[1]^k[1]^e[0]]
	e[2] = inv[d[2]^k[2]^e[1]]
	e[3] = inv[d[3]^k[3]^e[2]]
	e[4] = inv[d[4]^k[4]^e[3]]

	return e
}

// encryptKeyWithCryptoKey is the inverse of DecryptKey(0x00, cryptoKey, .),
// i.e. it finds encrypted such that DecryptKey(0x00, cryptoKey, encrypted)
// == plain.
func encryptKeyWithCryptoKey(inv [256]byte, cryptoKey, plain [5]byte) [5]byte {
	k := keyCipherKeystream(0x00, cryptoKey)
	return encryptWithKeystream(inv, k, plain)
}

func TestEncryptWithKeystreamInvertsDecryptKey(t *testing.T) {
	inv := t1Inverse()
	cryptoKey := [5]byte{0x01, 0x23, 0x45, 0x67, 0x89}
	plain := [5]byte{0xde, 0xad, 0xbe, 0xef, 0x42}

	encrypted := encryptKeyWithCryptoKey(inv, cryptoKey, plain)
	got := DecryptKey(0x00, cryptoKey, encrypted)

	if got != plain {
		t.Fatalf("DecryptKey(encryptKeyWithCryptoKey(k, p)) = %x, want %x", got, plain)
	}
}

func TestDecryptDiscKeyRecoversFirstPlayerKey(t *testing.T) {
	inv := t1Inverse()
	discKey := [5]byte{0x13, 0x37, 0xc0, 0xde, 0x01}

	var encryptedKeys [2048]byte

	verifier := encryptKeyWithCryptoKey(inv, discKey, discKey)
	copy(encryptedKeys[verifierOffset:verifierOffset+5], verifier[:])

	slot1 := encryptKeyWithCryptoKey(inv, playerKeys[0], discKey)
	copy(encryptedKeys[5:10], slot1[:])

	got, ok := DecryptDiscKey(encryptedKeys)
	if !ok {
		t.Fatalf("DecryptDiscKey() ok = false, want true; block = %s", spew.Sdump(encryptedKeys[:16]))
	}
	if got != discKey {
		t.Fatalf("DecryptDiscKey() = %x, want %x", got, discKey)
	}
}

func TestDecryptDiscKeyFailsWithoutMatchingSlot(t *testing.T) {
	var encryptedKeys [2048]byte // all zero, no slot encrypts to a self-consistent key

	if _, ok := DecryptDiscKey(encryptedKeys); ok {
		t.Fatal("DecryptDiscKey() ok = true for an all-zero block, want false")
	}
}
