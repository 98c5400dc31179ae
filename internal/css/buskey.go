package css

// DecodeDiscKey unscrambles a 2052-byte disc key response with the bus key
// established during the drive/host handshake. The response layout is
// fixed by the CSS specification: [len_hi, len_lo, rsv1, rsv2, payload x2048].
func DecodeDiscKey(response [2052]byte, busKey [5]byte) DiscKeyRecord {
	record := DiscKeyRecord{
		DataLength: uint16(response[0])<<8 | uint16(response[1]),
	}
	for i := 0; i < 2048; i++ {
		record.Key[i] = response[4+i] ^ busKey[4-(i%5)]
	}
	return record
}

// DecodeTitleKey unscrambles a 12-byte title key response with the bus key.
// The response layout is [len_hi, len_lo, rsv1, rsv2, cmi, key x5, rsv3, rsv4].
func DecodeTitleKey(response [12]byte, busKey [5]byte) TitleKeyRecord {
	record := TitleKeyRecord{
		DataLength: uint16(response[0])<<8 | uint16(response[1]),
		CMI:        response[4],
	}
	for i := 0; i < 5; i++ {
		record.Key[i] = response[5+i] ^ busKey[4-(i%5)]
	}
	return record
}
