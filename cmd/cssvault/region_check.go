package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dvdvault/cssvault/internal/core"
	"github.com/dvdvault/cssvault/internal/css"
)

var (
	regionRPCMaskFlag   string
	regionDiscInfoFlag  string
	regionCheckSilently bool
)

var regionCheckCmd = &cobra.Command{
	Use:   "region-check",
	Short: "Check whether a drive's RPC region mask permits playback of a disc",
	Run:   RegionCheckCommand,
}

func init() {
	regionCheckCmd.Flags().StringVar(&regionRPCMaskFlag, "rpc-mask", "", "Drive RPC region mask as a 2-char hex byte (default: region.default_rpc_mask from config)")
	regionCheckCmd.Flags().StringVar(&regionDiscInfoFlag, "region-info", "", "Disc lead-in region information as a 2-char hex byte")
	regionCheckCmd.Flags().BoolVar(&regionCheckSilently, "quiet", false, "Only set the exit code, print nothing")
	_ = regionCheckCmd.MarkFlagRequired("region-info")
}

func RegionCheckCommand(cmd *cobra.Command, args []string) {
	rpcMask, err := resolveRPCMask()
	if err != nil {
		fmt.Println("invalid --rpc-mask:", err)
		os.Exit(2)
	}
	regionInfo, err := parseHexByte(regionDiscInfoFlag)
	if err != nil {
		fmt.Println("invalid --region-info:", err)
		os.Exit(2)
	}

	allowed := css.CheckRegion(css.RPCState{RegionMask: rpcMask}, css.LeadInCopyright{RegionInformation: regionInfo})

	if !regionCheckSilently {
		fmt.Println(allowed)
	}
	if !allowed {
		os.Exit(1)
	}
}

// resolveRPCMask falls back to the config's region.default_rpc_mask when the
// caller doesn't pass --rpc-mask explicitly.
func resolveRPCMask() (byte, error) {
	if regionRPCMaskFlag == "" {
		cfg := core.LoadConfig(ConfigFlag)
		return cfg.Region.DefaultRPCMask, nil
	}
	return parseHexByte(regionRPCMaskFlag)
}

func parseHexByte(s string) (byte, error) {
	decoded, err := hex.DecodeString(s)
	if err != nil || len(decoded) != 1 {
		return 0, fmt.Errorf("expected a 2-character hex byte, got %q", s)
	}
	return decoded[0], nil
}
