package css

// DecryptDiscKey tries each of the 32 known player keys against a 2048-byte
// encrypted disc key block and returns the recovered disc key on the first
// candidate whose self-encryption matches the block's verifier slot.
//
// It reports false if none of the known player keys unlock the block; the
// caller may fall back to other recovery strategies (e.g. a leaked key not
// present in this build).
func DecryptDiscKey(encryptedKeys [2048]byte) (discKey [5]byte, ok bool) {
	var verifier [5]byte
	copy(verifier[:], encryptedKeys[verifierOffset:verifierOffset+5])

	for _, playerKey := range playerKeys {
		for slot := 1; slot < encryptedSlotCount; slot++ {
			off := slot * 5
			var encrypted [5]byte
			copy(encrypted[:], encryptedKeys[off:off+5])

			candidate := DecryptKey(0x00, playerKey, encrypted)
			verify := DecryptKey(0x00, candidate, verifier)

			if candidate == verify {
				return candidate, true
			}
		}
	}

	return [5]byte{}, false
}
