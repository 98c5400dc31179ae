package css

import "testing"

func TestDecodeDiscKeyBusXOR(t *testing.T) {
	busKey := [5]byte{0x01, 0x02, 0x03, 0x04, 0x05}

	var response [2052]byte
	response[0], response[1] = 0x08, 0x00
	response[2], response[3] = 0xaa, 0xbb

	record := DecodeDiscKey(response, busKey)

	if record.DataLength != 0x0800 {
		t.Fatalf("DataLength = %#x, want 0x0800", record.DataLength)
	}

	want := [5]byte{0x05, 0x04, 0x03, 0x02, 0x01}
	for i := 0; i < 2048; i++ {
		if got := record.Key[i]; got != want[i%5] {
			t.Fatalf("Key[%d] = %#x, want %#x", i, got, want[i%5])
		}
	}
}

func TestDecodeDiscKeyRoundTrip(t *testing.T) {
	busKey := [5]byte{0x9a, 0x11, 0x77, 0x00, 0xff}

	var payload [2048]byte
	for i := range payload {
		payload[i] = byte(i * 37)
	}

	var response [2052]byte
	response[0], response[1] = 0x08, 0x00
	for i, b := range payload {
		response[4+i] = b ^ busKey[4-(i%5)]
	}

	record := DecodeDiscKey(response, busKey)
	if record.Key != payload {
		t.Fatal("round-tripped disc key payload did not match original")
	}
}

func TestDecodeTitleKey(t *testing.T) {
	busKey := [5]byte{0x11, 0x22, 0x33, 0x44, 0x55}
	key := [5]byte{0xde, 0xad, 0xbe, 0xef, 0x01}

	var response [12]byte
	response[0], response[1] = 0x00, 0x08
	response[4] = 0x80 // CMI, encrypted flag set
	for i, b := range key {
		response[5+i] = b ^ busKey[4-(i%5)]
	}

	record := DecodeTitleKey(response, busKey)
	if record.CMI != 0x80 {
		t.Fatalf("CMI = %#x, want 0x80", record.CMI)
	}
	if record.Key != key {
		t.Fatalf("Key = %x, want %x", record.Key, key)
	}
}
