package css

// CheckRegion reports whether a drive's RPC state permits playback of a
// disc given its lead-in copyright region information.
//
// RegionMask has a bit set for every region the drive currently blocks;
// RegionInformation has a bit set for every region the disc is restricted
// to. A disc with no restriction (0x00) or restricted to every region at
// once (0xff) is always playable.
func CheckRegion(rpc RPCState, cmi LeadInCopyright) bool {
	if cmi.RegionInformation == 0x00 || cmi.RegionInformation == 0xff {
		return true
	}

	for b := 0; b < 8; b++ {
		bit := byte(1) << uint(b)
		driveAllows := rpc.RegionMask&bit == 0
		discWantsRegion := cmi.RegionInformation&bit != 0
		if driveAllows && discWantsRegion {
			return true
		}
	}
	return false
}
