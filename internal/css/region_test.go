package css

import "testing"

func TestCheckRegion(t *testing.T) {
	tests := []struct {
		name       string
		regionMask byte
		regionInfo byte
		want       bool
	}{
		{"drive allows region disc wants", 0xfe, 0x01, true},
		{"drive blocks every region", 0xff, 0x01, false},
		{"no restriction on either side", 0x00, 0x00, true},
		{"disc restricted to all regions", 0xff, 0xff, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckRegion(RPCState{RegionMask: tt.regionMask}, LeadInCopyright{RegionInformation: tt.regionInfo})
			if got != tt.want {
				t.Errorf("CheckRegion(%#x, %#x) = %v, want %v", tt.regionMask, tt.regionInfo, got, tt.want)
			}
		})
	}
}
