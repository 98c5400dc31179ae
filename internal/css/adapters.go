package css

// The core's cipher entry points take fixed-size arrays so that buffer
// length is a compile-time guarantee rather than a runtime check. These
// adapters exist for callers at the I/O boundary (file loaders, protocol
// parsers) that only have a []byte and need to validate its length before
// handing it to the core.

// AsDiscKeyResponse validates and converts a raw disc key response buffer.
func AsDiscKeyResponse(buf []byte) ([2052]byte, error) {
	var out [2052]byte
	if len(buf) != len(out) {
		return out, &SizeError{Field: "disc key response", Expected: len(out), Actual: len(buf)}
	}
	copy(out[:], buf)
	return out, nil
}

// AsTitleKeyResponse validates and converts a raw title key response buffer.
func AsTitleKeyResponse(buf []byte) ([12]byte, error) {
	var out [12]byte
	if len(buf) != len(out) {
		return out, &SizeError{Field: "title key response", Expected: len(out), Actual: len(buf)}
	}
	copy(out[:], buf)
	return out, nil
}

// AsBusKey validates and converts a raw bus key buffer.
func AsBusKey(buf []byte) ([5]byte, error) {
	var out [5]byte
	if len(buf) != len(out) {
		return out, &SizeError{Field: "bus key", Expected: len(out), Actual: len(buf)}
	}
	copy(out[:], buf)
	return out, nil
}

// AsEncryptedDiscKeyBlock validates and converts a raw disc key block buffer.
func AsEncryptedDiscKeyBlock(buf []byte) ([2048]byte, error) {
	var out [2048]byte
	if len(buf) != len(out) {
		return out, &SizeError{Field: "encrypted disc key block", Expected: len(out), Actual: len(buf)}
	}
	copy(out[:], buf)
	return out, nil
}
