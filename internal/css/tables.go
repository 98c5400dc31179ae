// Substitution tables and fixed key material for the CSS authentication
// and stream ciphers. Values are embedded verbatim rather than generated
// at init time so that a diff against a reference implementation's tables
// is a straightforward byte comparison.
package css

// t3Table follows the documented 8-entry repeating pattern used by the
// stream cipher's LFSR1 feedback path. It is indexed by the 9-bit lfsr1_lo
// register, which is always seeded with bit 8 set, so the pattern must
// repeat across all 512 entries, not just the low 256.
var t3Table = [512]byte{
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
	0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff, 0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff,
}

// t4Table is the bit-reverse-within-byte permutation: t4Table[0x01] == 0x80.
var t4Table = [256]byte{
	0x00, 0x80, 0x40, 0xc0, 0x20, 0xa0, 0x60, 0xe0, 0x10, 0x90, 0x50, 0xd0, 0x30, 0xb0, 0x70, 0xf0,
	0x08, 0x88, 0x48, 0xc8, 0x28, 0xa8, 0x68, 0xe8, 0x18, 0x98, 0x58, 0xd8, 0x38, 0xb8, 0x78, 0xf8,
	0x04, 0x84, 0x44, 0xc4, 0x24, 0xa4, 0x64, 0xe4, 0x14, 0x94, 0x54, 0xd4, 0x34, 0xb4, 0x74, 0xf4,
	0x0c, 0x8c, 0x4c, 0xcc, 0x2c, 0xac, 0x6c, 0xec, 0x1c, 0x9c, 0x5c, 0xdc, 0x3c, 0xbc, 0x7c, 0xfc,
	0x02, 0x82, 0x42, 0xc2, 0x22, 0xa2, 0x62, 0xe2, 0x12, 0x92, 0x52, 0xd2, 0x32, 0xb2, 0x72, 0xf2,
	0x0a, 0x8a, 0x4a, 0xca, 0x2a, 0xaa, 0x6a, 0xea, 0x1a, 0x9a, 0x5a, 0xda, 0x3a, 0xba, 0x7a, 0xfa,
	0x06, 0x86, 0x46, 0xc6, 0x26, 0xa6, 0x66, 0xe6, 0x16, 0x96, 0x56, 0xd6, 0x36, 0xb6, 0x76, 0xf6,
	0x0e, 0x8e, 0x4e, 0xce, 0x2e, 0xae, 0x6e, 0xee, 0x1e, 0x9e, 0x5e, 0xde, 0x3e, 0xbe, 0x7e, 0xfe,
	0x01, 0x81, 0x41, 0xc1, 0x21, 0xa1, 0x61, 0xe1, 0x11, 0x91, 0x51, 0xd1, 0x31, 0xb1, 0x71, 0xf1,
	0x09, 0x89, 0x49, 0xc9, 0x29, 0xa9, 0x69, 0xe9, 0x19, 0x99, 0x59, 0xd9, 0x39, 0xb9, 0x79, 0xf9,
	0x05, 0x85, 0x45, 0xc5, 0x25, 0xa5, 0x65, 0xe5, 0x15, 0x95, 0x55, 0xd5, 0x35, 0xb5, 0x75, 0xf5,
	0x0d, 0x8d, 0x4d, 0xcd, 0x2d, 0xad, 0x6d, 0xed, 0x1d, 0x9d, 0x5d, 0xdd, 0x3d, 0xbd, 0x7d, 0xfd,
	0x03, 0x83, 0x43, 0xc3, 0x23, 0xa3, 0x63, 0xe3, 0x13, 0x93, 0x53, 0xd3, 0x33, 0xb3, 0x73, 0xf3,
	0x0b, 0x8b, 0x4b, 0xcb, 0x2b, 0xab, 0x6b, 0xeb, 0x1b, 0x9b, 0x5b, 0xdb, 0x3b, 0xbb, 0x7b, 0xfb,
	0x07, 0x87, 0x47, 0xc7, 0x27, 0xa7, 0x67, 0xe7, 0x17, 0x97, 0x57, 0xd7, 0x37, 0xb7, 0x77, 0xf7,
	0x0f, 0x8f, 0x4f, 0xcf, 0x2f, 0xaf, 0x6f, 0xef, 0x1f, 0x9f, 0x5f, 0xdf, 0x3f, 0xbf, 0x7f, 0xff,
}

// t5Table is t4Table with every entry bitwise-complemented; used only by
// the sector descrambler, never by the key cipher.
var t5Table = [256]byte{
	0xff, 0x7f, 0xbf, 0x3f, 0xdf, 0x5f, 0x9f, 0x1f, 0xef, 0x6f, 0xaf, 0x2f, 0xcf, 0x4f, 0x8f, 0x0f,
	0xf7, 0x77, 0xb7, 0x37, 0xd7, 0x57, 0x97, 0x17, 0xe7, 0x67, 0xa7, 0x27, 0xc7, 0x47, 0x87, 0x07,
	0xfb, 0x7b, 0xbb, 0x3b, 0xdb, 0x5b, 0x9b, 0x1b, 0xeb, 0x6b, 0xab, 0x2b, 0xcb, 0x4b, 0x8b, 0x0b,
	0xf3, 0x73, 0xb3, 0x33, 0xd3, 0x53, 0x93, 0x13, 0xe3, 0x63, 0xa3, 0x23, 0xc3, 0x43, 0x83, 0x03,
	0xfd, 0x7d, 0xbd, 0x3d, 0xdd, 0x5d, 0x9d, 0x1d, 0xed, 0x6d, 0xad, 0x2d, 0xcd, 0x4d, 0x8d, 0x0d,
	0xf5, 0x75, 0xb5, 0x35, 0xd5, 0x55, 0x95, 0x15, 0xe5, 0x65, 0xa5, 0x25, 0xc5, 0x45, 0x85, 0x05,
	0xf9, 0x79, 0xb9, 0x39, 0xd9, 0x59, 0x99, 0x19, 0xe9, 0x69, 0xa9, 0x29, 0xc9, 0x49, 0x89, 0x09,
	0xf1, 0x71, 0xb1, 0x31, 0xd1, 0x51, 0x91, 0x11, 0xe1, 0x61, 0xa1, 0x21, 0xc1, 0x41, 0x81, 0x01,
	0xfe, 0x7e, 0xbe, 0x3e, 0xde, 0x5e, 0x9e, 0x1e, 0xee, 0x6e, 0xae, 0x2e, 0xce, 0x4e, 0x8e, 0x0e,
	0xf6, 0x76, 0xb6, 0x36, 0xd6, 0x56, 0x96, 0x16, 0xe6, 0x66, 0xa6, 0x26, 0xc6, 0x46, 0x86, 0x06,
	0xfa, 0x7a, 0xba, 0x3a, 0xda, 0x5a, 0x9a, 0x1a, 0xea, 0x6a, 0xaa, 0x2a, 0xca, 0x4a, 0x8a, 0x0a,
	0xf2, 0x72, 0xb2, 0x32, 0xd2, 0x52, 0x92, 0x12, 0xe2, 0x62, 0xa2, 0x22, 0xc2, 0x42, 0x82, 0x02,
	0xfc, 0x7c, 0xbc, 0x3c, 0xdc, 0x5c, 0x9c, 0x1c, 0xec, 0x6c, 0xac, 0x2c, 0xcc, 0x4c, 0x8c, 0x0c,
	0xf4, 0x74, 0xb4, 0x34, 0xd4, 0x54, 0x94, 0x14, 0xe4, 0x64, 0xa4, 0x24, 0xc4, 0x44, 0x84, 0x04,
	0xf8, 0x78, 0xb8, 0x38, 0xd8, 0x58, 0x98, 0x18, 0xe8, 0x68, 0xa8, 0x28, 0xc8, 0x48, 0x88, 0x08,
	0xf0, 0x70, 0xb0, 0x30, 0xd0, 0x50, 0x90, 0x10, 0xe0, 0x60, 0xa0, 0x20, 0xc0, 0x40, 0x80, 0x00,
}

// t1Table and t2Table drive the key-mangling cipher's keystream generator.
var t1Table = [256]byte{
	0x69, 0x1c, 0x7f, 0x8e, 0x8a, 0x0f, 0x4f, 0x20, 0xc2, 0x04, 0xdd, 0xd6, 0x0e, 0x39, 0xd8, 0x94,
	0xd2, 0x98, 0x48, 0x53, 0x06, 0x74, 0x72, 0x9f, 0x80, 0xf0, 0xa6, 0x70, 0xe4, 0x64, 0x43, 0xe2,
	0x63, 0x59, 0xc8, 0xe7, 0xe6, 0x1a, 0xfd, 0x3c, 0x03, 0x97, 0x30, 0x40, 0x93, 0x34, 0x5d, 0x05,
	0xc4, 0xaa, 0x91, 0xed, 0xa1, 0xf6, 0x71, 0xec, 0x1b, 0x87, 0xcb, 0x26, 0xe8, 0x9a, 0xc9, 0x00,
	0x65, 0xd9, 0xf5, 0x0c, 0x6e, 0xbf, 0x4a, 0x2c, 0xf1, 0x17, 0x76, 0x9e, 0x22, 0x84, 0xf3, 0xa8,
	0xd3, 0xca, 0x5e, 0x50, 0x90, 0x2a, 0x1e, 0x09, 0x12, 0x77, 0xa2, 0xd0, 0x9d, 0xa0, 0xac, 0xf2,
	0x75, 0x19, 0x28, 0xe5, 0x85, 0xe0, 0xff, 0xdb, 0x73, 0x2d, 0xcc, 0x3b, 0xd1, 0xd5, 0xc7, 0xde,
	0x6f, 0x11, 0x4b, 0x99, 0xad, 0x89, 0x25, 0x86, 0xef, 0xe1, 0x6c, 0x21, 0xf9, 0xc0, 0xdc, 0x5c,
	0x78, 0x02, 0xce, 0x6d, 0xa3, 0x96, 0x42, 0xaf, 0x7a, 0x46, 0xbc, 0x7b, 0x45, 0xd4, 0x49, 0x16,
	0x37, 0x51, 0xa7, 0xbe, 0xae, 0xea, 0xbd, 0x3d, 0x1d, 0x3e, 0x56, 0x4d, 0x83, 0x82, 0x88, 0xb1,
	0x92, 0xc3, 0x67, 0x38, 0xc6, 0x27, 0x23, 0x55, 0x47, 0x4e, 0x66, 0x8b, 0x5b, 0x2f, 0xb5, 0x18,
	0x10, 0xfc, 0x31, 0xb4, 0x14, 0x2b, 0x81, 0xee, 0x0b, 0xe3, 0xc1, 0x32, 0xeb, 0x57, 0x9b, 0x33,
	0xda, 0xa5, 0x58, 0x5a, 0x36, 0x7d, 0x9c, 0x95, 0xe9, 0x1f, 0x60, 0x3f, 0xf7, 0x62, 0xcd, 0x2e,
	0x4c, 0xfb, 0xb9, 0xa9, 0xb2, 0xf8, 0x52, 0xb7, 0x7c, 0xb0, 0x29, 0xc5, 0xb8, 0xf4, 0xd7, 0xfa,
	0x0a, 0xcf, 0x13, 0x0d, 0x35, 0x8c, 0xa4, 0x08, 0x24, 0x7e, 0xb6, 0x44, 0xfe, 0x41, 0x8f, 0x15,
	0x3a, 0xab, 0xbb, 0x8d, 0x01, 0x6a, 0x61, 0xdf, 0xb3, 0x5f, 0x6b, 0x07, 0xba, 0x68, 0x54, 0x79,
}

var t2Table = [256]byte{
	0x1f, 0x4b, 0xbb, 0xd5, 0x15, 0x49, 0x89, 0xb7, 0xec, 0x6f, 0x0a, 0x53, 0xd9, 0x06, 0xe8, 0x04,
	0x08, 0xee, 0x19, 0xeb, 0xad, 0xff, 0x47, 0xa8, 0xd1, 0x64, 0xd6, 0x3f, 0x5d, 0x8a, 0x18, 0x70,
	0x5c, 0x0e, 0x3e, 0xc8, 0xd2, 0xb3, 0x17, 0x63, 0xfd, 0x5b, 0x77, 0x82, 0x09, 0xab, 0xf1, 0x6e,
	0x1d, 0x97, 0x3a, 0xa5, 0x2a, 0x16, 0x48, 0x6d, 0x8b, 0xb4, 0x4e, 0x0f, 0x12, 0x21, 0xe3, 0xc7,
	0x8e, 0xd8, 0x5e, 0xd4, 0xca, 0x40, 0xbc, 0x11, 0xa6, 0xef, 0x81, 0x59, 0xe9, 0x31, 0x36, 0x50,
	0xc4, 0x7c, 0xfc, 0xa1, 0x9c, 0x91, 0x71, 0xdc, 0x1b, 0x34, 0x30, 0x72, 0xe5, 0x69, 0x8f, 0x7e,
	0x0d, 0xb2, 0xa9, 0x44, 0xe1, 0x14, 0xa2, 0x2b, 0xc1, 0xc2, 0xb1, 0xdf, 0x62, 0xda, 0xa7, 0xb5,
	0xc3, 0x4c, 0x26, 0x76, 0x85, 0x07, 0x41, 0xe0, 0x7b, 0x95, 0x22, 0x79, 0x51, 0x9f, 0x01, 0xbf,
	0xdb, 0x5f, 0xde, 0x02, 0x27, 0x28, 0x75, 0x8d, 0xa4, 0xcb, 0xe2, 0xc5, 0x78, 0xae, 0x2d, 0x9d,
	0xfe, 0xb8, 0x2c, 0xcf, 0x94, 0x38, 0x4f, 0x9e, 0x92, 0x05, 0xc9, 0x0b, 0x6c, 0xd7, 0xac, 0x98,
	0x93, 0x24, 0xf8, 0xe4, 0xea, 0x8c, 0x9b, 0x99, 0x61, 0x74, 0xed, 0x03, 0x57, 0x46, 0x0c, 0xf0,
	0x60, 0x39, 0xf4, 0x90, 0x13, 0xa0, 0x66, 0x32, 0xf3, 0x4a, 0x37, 0x1c, 0x1a, 0xb9, 0x96, 0xf9,
	0x83, 0xf5, 0xfb, 0xe6, 0x23, 0xdd, 0x20, 0x43, 0x3c, 0x25, 0x73, 0x1e, 0x67, 0xd0, 0x33, 0x00,
	0xf7, 0x68, 0xce, 0x84, 0x58, 0x65, 0x2e, 0x86, 0x3b, 0xaa, 0x2f, 0xc0, 0x7d, 0x54, 0xcc, 0x87,
	0xf6, 0xd3, 0x52, 0x4d, 0xcd, 0x35, 0xba, 0x45, 0xe7, 0x5a, 0xb0, 0x55, 0xbd, 0xbe, 0x29, 0x80,
	0x3d, 0xc6, 0x7f, 0x7a, 0x6b, 0x6a, 0x42, 0xfa, 0x88, 0xa3, 0x56, 0xaf, 0x9a, 0xb6, 0xf2, 0x10,
}

// e0Table..e3Table are the four substitution tables used by the six
// authentication substitution rounds in EncryptKey.
var e0Table = [256]byte{
	0x25, 0x5b, 0x6a, 0xe7, 0x23, 0xad, 0x6b, 0x32, 0x53, 0x75, 0x15, 0x26, 0x97, 0x39, 0x30, 0x9a,
	0xc6, 0x50, 0xec, 0x2e, 0x4e, 0x7b, 0xbf, 0x90, 0xff, 0x6d, 0x47, 0x76, 0x8f, 0xd7, 0xfe, 0x71,
	0xfd, 0x16, 0x8e, 0x28, 0x2c, 0x8b, 0xb9, 0x56, 0xf3, 0x35, 0xcd, 0x7a, 0xbb, 0xa6, 0xc7, 0xd0,
	0x8c, 0x85, 0x06, 0x17, 0x2f, 0x78, 0xba, 0x7c, 0x2b, 0x9d, 0xa7, 0xf5, 0x79, 0x0b, 0x52, 0x2a,
	0xd1, 0x9e, 0x65, 0x42, 0x58, 0x3e, 0x64, 0x91, 0xf9, 0x46, 0xa2, 0xdb, 0xed, 0xee, 0x27, 0x45,
	0x3b, 0xea, 0xb1, 0x0e, 0xc4, 0x41, 0x9b, 0x38, 0x74, 0x4f, 0xa3, 0x95, 0x89, 0xc2, 0x03, 0x82,
	0x59, 0xd2, 0xe3, 0x5c, 0x31, 0x04, 0x86, 0xfb, 0xb0, 0x70, 0xdc, 0x10, 0xa8, 0x92, 0xa0, 0xce,
	0x62, 0x5d, 0x6e, 0x5e, 0x88, 0x83, 0xf4, 0xd3, 0x2d, 0x94, 0x07, 0xc3, 0x12, 0xe6, 0x0a, 0x96,
	0xa5, 0xd8, 0x84, 0x6f, 0x01, 0xb5, 0x87, 0xc1, 0x34, 0xaf, 0x40, 0x4c, 0xdd, 0x99, 0xdf, 0xe8,
	0x7f, 0x14, 0x37, 0xbd, 0x0d, 0xef, 0x1a, 0x36, 0x4a, 0xe4, 0x21, 0xfa, 0x3c, 0x05, 0xb8, 0x72,
	0x80, 0x61, 0x4b, 0x93, 0xde, 0xc8, 0xa4, 0xca, 0xab, 0x33, 0xaa, 0x9c, 0x29, 0xf1, 0xd5, 0x51,
	0x9f, 0x1e, 0x5f, 0xc0, 0x48, 0x7d, 0x3d, 0xeb, 0x1c, 0xe9, 0x22, 0xe1, 0xd4, 0x0f, 0x24, 0xb4,
	0x68, 0x20, 0xf6, 0x8d, 0xe2, 0xc5, 0x98, 0x49, 0x8a, 0xa9, 0x1b, 0xcc, 0x63, 0x1d, 0x08, 0xb3,
	0xd6, 0xda, 0xa1, 0x44, 0x81, 0xcf, 0xf8, 0xbc, 0x7e, 0x77, 0xe0, 0x1f, 0xbe, 0xb2, 0x69, 0x3f,
	0x4d, 0x66, 0xae, 0xac, 0x18, 0xfc, 0x57, 0x3a, 0x13, 0x54, 0x67, 0xe5, 0xf2, 0x43, 0xb7, 0x60,
	0x5a, 0xf0, 0x6c, 0x19, 0xf7, 0x02, 0x55, 0x00, 0xd9, 0x11, 0xc9, 0x0c, 0x09, 0x73, 0xcb, 0xb6,
}

var e1Table = [256]byte{
	0xcb, 0xac, 0x2b, 0xfb, 0x78, 0x46, 0x18, 0x16, 0xf3, 0xad, 0xb2, 0x12, 0xf9, 0x19, 0x8a, 0x89,
	0xbb, 0x0c, 0x7a, 0x99, 0x8c, 0xd1, 0xe4, 0x4b, 0x11, 0x93, 0xf0, 0xd0, 0x00, 0x3e, 0x9e, 0xc7,
	0xc2, 0xd7, 0x1c, 0xf2, 0x90, 0xc4, 0xd8, 0x1d, 0xe8, 0xea, 0x2c, 0x5a, 0x88, 0xe0, 0x70, 0x48,
	0x95, 0x29, 0x30, 0x57, 0x69, 0xf5, 0x7e, 0x77, 0xba, 0x34, 0xc6, 0xb1, 0xfd, 0x84, 0xb7, 0x6f,
	0xe1, 0x8b, 0x36, 0xa1, 0x9b, 0x7f, 0x2a, 0xc9, 0x98, 0x37, 0x8d, 0xdf, 0xbf, 0x05, 0x0d, 0x62,
	0xe6, 0x96, 0xe5, 0x59, 0xc3, 0x9d, 0x7b, 0x52, 0xca, 0x92, 0xcf, 0x1f, 0x33, 0x6e, 0xc8, 0x73,
	0xb3, 0x9c, 0x97, 0x2f, 0x3c, 0xdb, 0x82, 0xa9, 0x74, 0x6b, 0x0e, 0x4d, 0xfe, 0x85, 0x86, 0x41,
	0xb4, 0x66, 0x39, 0xd4, 0x7d, 0x56, 0x23, 0x3b, 0x3d, 0xd9, 0x83, 0xfa, 0x68, 0xbc, 0x14, 0x55,
	0x07, 0x50, 0xeb, 0xb6, 0x79, 0xc0, 0x2e, 0x9a, 0xff, 0xd3, 0x54, 0x3f, 0x5c, 0x8f, 0x4e, 0x08,
	0x13, 0x4f, 0xfc, 0x64, 0x35, 0x51, 0x61, 0x6a, 0xb9, 0x81, 0xdc, 0x3a, 0xe3, 0xaa, 0x1a, 0x8e,
	0xec, 0xb0, 0x65, 0xa3, 0x67, 0x17, 0xcd, 0x09, 0x42, 0xda, 0xed, 0x44, 0x7c, 0x25, 0x75, 0xe2,
	0x87, 0x63, 0x91, 0xbd, 0x45, 0x32, 0xf8, 0x01, 0x76, 0x6d, 0x06, 0x80, 0xe9, 0x38, 0x9f, 0x60,
	0x5e, 0x72, 0xa6, 0x0b, 0xf1, 0x71, 0xf4, 0xc5, 0x58, 0x53, 0xaf, 0xf7, 0x15, 0xce, 0x5b, 0x6c,
	0x5d, 0x49, 0xcc, 0x24, 0x21, 0x31, 0x26, 0x10, 0xd5, 0xde, 0x03, 0xb5, 0xdd, 0x22, 0x4c, 0xa0,
	0xf6, 0xc1, 0x94, 0xd6, 0xef, 0xee, 0xb8, 0xe7, 0x47, 0x04, 0x40, 0xae, 0x1e, 0x2d, 0xa8, 0xa5,
	0xab, 0xa4, 0x27, 0xd2, 0x0a, 0xa7, 0x02, 0x5f, 0x4a, 0xbe, 0x28, 0x0f, 0xa2, 0x43, 0x1b, 0x20,
}

var e2Table = [256]byte{
	0x7e, 0x11, 0x21, 0x79, 0xc5, 0xa9, 0xd2, 0x59, 0x73, 0xae, 0x98, 0xdd, 0xaa, 0x58, 0x93, 0x86,
	0xe7, 0x54, 0xb9, 0xcf, 0x62, 0xf6, 0x0e, 0xb3, 0x92, 0xb2, 0x46, 0x00, 0x95, 0x31, 0x8a, 0x7c,
	0x36, 0x39, 0xac, 0xb7, 0x52, 0x2f, 0x3d, 0x1d, 0x05, 0x19, 0xcd, 0x24, 0xa0, 0xd8, 0x34, 0x75,
	0xeb, 0x69, 0xc2, 0x57, 0x72, 0x13, 0xc3, 0x1f, 0x7b, 0xd7, 0x91, 0xa5, 0xe6, 0x97, 0x74, 0x47,
	0xee, 0x56, 0x65, 0x01, 0x29, 0xe2, 0xc8, 0x51, 0x38, 0x6a, 0x6c, 0x1a, 0x1e, 0xf8, 0xe9, 0x0d,
	0x5e, 0xc6, 0x99, 0xf1, 0x4e, 0x63, 0xd1, 0x41, 0xc4, 0x5c, 0x60, 0x09, 0x20, 0xa6, 0x71, 0xda,
	0x67, 0x32, 0x9c, 0x03, 0x4a, 0xbe, 0x7a, 0xfa, 0x4f, 0x4b, 0xb5, 0x15, 0x61, 0xbd, 0xed, 0x28,
	0xa1, 0xce, 0x9f, 0x70, 0x4d, 0x0b, 0xdc, 0xe5, 0xc1, 0x8e, 0x0a, 0x9d, 0x18, 0xde, 0x10, 0xd4,
	0x6e, 0x26, 0x8d, 0x49, 0xab, 0xb6, 0x30, 0x42, 0x68, 0x43, 0xa2, 0x12, 0xad, 0x08, 0x90, 0x02,
	0x81, 0x84, 0xd3, 0x0c, 0xef, 0x35, 0x83, 0xd5, 0x2b, 0x8b, 0xea, 0xdb, 0x40, 0x3f, 0x9e, 0x25,
	0x53, 0xc9, 0xd6, 0x88, 0xa8, 0x14, 0xe3, 0xe4, 0xe8, 0xff, 0x3b, 0xc7, 0xb8, 0xb4, 0x04, 0x45,
	0x3c, 0xbb, 0xbc, 0xcc, 0x9a, 0xfb, 0xbf, 0xfc, 0x87, 0x66, 0xe1, 0x64, 0xf5, 0x3e, 0xa3, 0x76,
	0x8f, 0x44, 0xaf, 0xd0, 0x48, 0x5f, 0xf0, 0x33, 0xba, 0x94, 0xa4, 0x80, 0x55, 0x6b, 0x2a, 0x2c,
	0xf7, 0x2d, 0x6d, 0x5d, 0x0f, 0xcb, 0x17, 0x7f, 0xa7, 0xfe, 0x9b, 0x2e, 0x23, 0xf9, 0x4c, 0x77,
	0x27, 0x22, 0x50, 0x85, 0x96, 0xf3, 0x07, 0xe0, 0xdf, 0x8c, 0x37, 0xb1, 0xf4, 0x16, 0x7d, 0xd9,
	0x6f, 0x3a, 0x82, 0x5a, 0xec, 0xb0, 0x06, 0x1c, 0xc0, 0xca, 0xfd, 0x5b, 0x78, 0xf2, 0x1b, 0x89,
}

var e3Table = [256]byte{
	0xc0, 0x16, 0x03, 0x1c, 0x3b, 0x9f, 0xc7, 0x8b, 0x73, 0xe1, 0x3d, 0xf9, 0x37, 0xac, 0x8f, 0xd7,
	0x98, 0x7b, 0x10, 0x94, 0x58, 0xe8, 0x12, 0x35, 0xf6, 0x21, 0x28, 0x82, 0xfd, 0x8a, 0xa3, 0x0b,
	0xa5, 0x97, 0x84, 0x5b, 0x9d, 0x54, 0xc2, 0x65, 0x4a, 0x15, 0x9c, 0xe2, 0xcd, 0x7c, 0x42, 0xd9,
	0xf8, 0x93, 0x48, 0xa1, 0x71, 0xed, 0x32, 0xdf, 0x67, 0xe3, 0xd2, 0x6d, 0x2c, 0x17, 0x79, 0x2a,
	0x49, 0x51, 0x55, 0xa7, 0xef, 0xb7, 0xfc, 0x22, 0xf2, 0x8e, 0x86, 0x9a, 0x75, 0xb1, 0xbe, 0xb9,
	0x74, 0x64, 0xc3, 0x40, 0x06, 0x91, 0x90, 0x45, 0x6e, 0xb5, 0x41, 0xd8, 0xff, 0x08, 0x96, 0x07,
	0x50, 0x2d, 0xbf, 0x95, 0xb3, 0xe9, 0x3e, 0xe7, 0xf1, 0x70, 0xa6, 0x2e, 0xbd, 0x0c, 0x76, 0x13,
	0x89, 0xa8, 0x88, 0xcc, 0xaf, 0xea, 0xbc, 0xec, 0x99, 0xdc, 0x81, 0x7d, 0xdb, 0x63, 0x52, 0xc6,
	0x53, 0xf4, 0x6f, 0x04, 0xae, 0xc1, 0xb2, 0x19, 0x8c, 0xf0, 0x8d, 0x59, 0x68, 0xa0, 0x78, 0x20,
	0xe4, 0x2f, 0xbb, 0x0e, 0xb0, 0x80, 0xcb, 0x4f, 0x9e, 0x7e, 0x7a, 0xde, 0x0f, 0x87, 0x4d, 0x1d,
	0x1b, 0x4c, 0xfe, 0x5c, 0x4b, 0xd0, 0xc8, 0xaa, 0x5e, 0xcf, 0x69, 0x83, 0xca, 0x5a, 0x00, 0x66,
	0xeb, 0xf5, 0x1a, 0x25, 0xce, 0xdd, 0x60, 0x47, 0x92, 0xb4, 0x3f, 0x0a, 0x33, 0x85, 0x24, 0xc4,
	0x77, 0xd4, 0x72, 0x5f, 0x4e, 0xda, 0xd3, 0xd5, 0xfb, 0x14, 0x6a, 0x23, 0x26, 0x7f, 0x62, 0x02,
	0x30, 0x5d, 0xe6, 0x11, 0x9b, 0x18, 0xc9, 0xf3, 0xa2, 0x05, 0xa4, 0x27, 0xab, 0x43, 0x38, 0xe0,
	0x46, 0x01, 0x31, 0x1f, 0xfa, 0xba, 0xa9, 0x6b, 0x56, 0xe5, 0xf7, 0x36, 0x09, 0x6c, 0xad, 0xd6,
	0x61, 0xee, 0x2b, 0x29, 0xd1, 0x0d, 0x39, 0x34, 0x3a, 0xb6, 0xb8, 0x1e, 0x57, 0x44, 0x3c, 0xc5,
}

// secret is the fixed 5-byte constant folded into the authentication
// cipher's LFSR seed derivation.
var secret = [5]byte{0x55, 0xd6, 0xc4, 0xc5, 0x28}

// challengePermutation maps KeyType to the order in which the 10-byte
// challenge is scattered before seeding the bitstream generator.
var challengePermutation = [3][10]byte{
	{6, 5, 9, 1, 2, 8, 0, 7, 3, 4},
	{3, 8, 4, 2, 0, 5, 6, 9, 7, 1},
	{0, 6, 4, 7, 1, 3, 9, 5, 2, 8},
}

// variantPermutation maps a caller-supplied variant to the effective
// variant used by the substitution rounds, indexed by KeyType-1 for the
// two bus key types (the authentication key type uses the variant as-is).
var variantPermutation = [2][32]byte{
	{4, 28, 10, 22, 27, 11, 21, 19, 25, 30, 23, 29, 6, 13, 31, 14, 26, 12, 3, 2, 1, 9, 17, 24, 20, 0, 7, 8, 15, 16, 5, 18},
	{4, 5, 19, 27, 7, 10, 31, 12, 30, 6, 11, 24, 3, 18, 0, 16, 22, 25, 29, 21, 15, 14, 26, 20, 23, 9, 13, 8, 2, 17, 28, 1},
}

// variants holds the per-effective-variant byte folded into the round
// substitution index alongside e2Table.
var variants = [32]byte{
	0xf4, 0x31, 0x69, 0xb8, 0xa3, 0xf5, 0x95, 0x63, 0x1b, 0x3a, 0x88, 0x60, 0xf9, 0x7e, 0x02, 0xb5,
	0x48, 0xf0, 0x0c, 0x99, 0x94, 0x75, 0xec, 0x1c, 0x18, 0x6f, 0x37, 0x35, 0x2a, 0x83, 0x64, 0x28,
}

// playerKeys holds the 32 publicly known factory player keys out of the
// 409 candidate slots in a disc key block. See DESIGN.md for the open
// question about the remaining, unknown slots.
var playerKeys = [32][5]byte{
	{0x75, 0xa4, 0xf8, 0x49, 0x6c},
	{0xd9, 0x98, 0x8e, 0x7a, 0x78},
	{0x71, 0x7c, 0xe1, 0xe1, 0x2f},
	{0x1b, 0xdc, 0xca, 0x28, 0x10},
	{0x4d, 0xab, 0x99, 0x86, 0x52},
	{0x72, 0x34, 0x05, 0xf9, 0x57},
	{0xb0, 0x81, 0x55, 0xa7, 0xfb},
	{0x2c, 0x4f, 0xd8, 0x25, 0x45},
	{0x73, 0xf3, 0x71, 0x84, 0x90},
	{0x57, 0x28, 0x8d, 0x4f, 0x66},
	{0x61, 0x27, 0x63, 0x31, 0xce},
	{0xce, 0x10, 0x9f, 0x5d, 0x20},
	{0x71, 0x8d, 0x2a, 0x50, 0x81},
	{0x68, 0x4c, 0x6d, 0x89, 0x70},
	{0x0c, 0x8c, 0x6d, 0x7c, 0x14},
	{0x49, 0x33, 0x85, 0xb3, 0x21},
	{0xcf, 0x38, 0xda, 0xe9, 0x82},
	{0x45, 0xbe, 0x6b, 0x30, 0x42},
	{0x7e, 0xf1, 0xcd, 0x67, 0xcd},
	{0xb6, 0x4a, 0xc2, 0x5e, 0x2d},
	{0x61, 0x73, 0xf8, 0x15, 0xed},
	{0x8f, 0x26, 0x31, 0xd7, 0xab},
	{0x89, 0x02, 0x3e, 0x36, 0xd8},
	{0x81, 0x91, 0x05, 0xa9, 0x09},
	{0x65, 0x16, 0x5e, 0x83, 0x6c},
	{0xfd, 0x1a, 0x94, 0x34, 0x73},
	{0x87, 0xd2, 0xb2, 0xab, 0x9f},
	{0x42, 0xb0, 0x18, 0xdc, 0x13},
	{0xcc, 0x96, 0x3f, 0x11, 0x74},
	{0xc9, 0xfb, 0x3c, 0xdc, 0xd2},
	{0x0f, 0x74, 0xde, 0x99, 0x95},
	{0x20, 0xbb, 0x7b, 0x36, 0xa7},
}

// verifierOffset is the byte offset of the self-encrypted verifier slot
// within an encrypted disc key block, kept as a named constant per the
// design note that a future media revision could relocate it.
const verifierOffset = 0

// encryptedSlotCount is the number of 5-byte candidate slots in a disc
// key block (409 slots, 5 bytes each, occupying 2045 of the block's 2048
// bytes).
const encryptedSlotCount = 409
