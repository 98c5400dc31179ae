package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dvdvault/cssvault/internal/css"
	"github.com/dvdvault/cssvault/internal/metadata"
)

var (
	recoverKeysFlag       string
	recoverDiscIDFlag     string
	recoverVolumeFileFlag string
)

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Recover a disc key from an encrypted 2048-byte key block",
	Run:   RecoverCommand,
}

func init() {
	recoverCmd.Flags().StringVar(&recoverKeysFlag, "keys", "", "Path to a 2048-byte encrypted disc key block")
	recoverCmd.Flags().StringVar(&recoverDiscIDFlag, "disc-id", "", "Identifier under which to store the recovered key (default: the volume label, or the recovered key itself)")
	recoverCmd.Flags().StringVar(&recoverVolumeFileFlag, "volume-label-file", "", "Path to a 32-byte ISO 9660 volume identifier field")
	_ = recoverCmd.MarkFlagRequired("keys")
}

func RecoverCommand(cmd *cobra.Command, args []string) {
	_, logger, store := loadEnvironment()
	defer store.Close()

	logger.Infow("starting disc key recovery", "keys_file", recoverKeysFlag, "disc_id", recoverDiscIDFlag)

	raw, err := os.ReadFile(recoverKeysFlag)
	if err != nil {
		logger.Fatalw("error reading key block", "error", err)
	}

	block, err := css.AsEncryptedDiscKeyBlock(raw)
	if err != nil {
		logger.Fatalw("error validating key block", "error", err)
	}

	discKey, ok := css.DecryptDiscKey(block)
	if !ok {
		logger.Errorw("key recovery exhausted all known player keys", "disc_id", recoverDiscIDFlag)
		fmt.Println("no known player key unlocked this disc key block")
		os.Exit(1)
	}

	volumeLabel := readVolumeLabel(logger)
	discID := resolveDiscID(discKey, volumeLabel)

	if err := store.SaveDiscKey(discID, discKey, volumeLabel); err != nil {
		logger.Fatalw("error saving recovered disc key", "error", err)
	}

	logger.Infow("recovered and stored disc key", "disc_id", discID, "volume_label", volumeLabel)
	fmt.Printf("recovered disc key for %q\n", discID)
}

// resolveDiscID falls back from the explicit --disc-id flag to the volume
// label, and finally to the recovered key itself, so recover never needs a
// caller-supplied identifier to have somewhere to store a key.
func resolveDiscID(discKey [5]byte, volumeLabel string) string {
	if recoverDiscIDFlag != "" {
		return recoverDiscIDFlag
	}
	if volumeLabel != "" {
		return volumeLabel
	}
	return hex.EncodeToString(discKey[:])
}

func readVolumeLabel(logger interface{ Warnw(string, ...interface{}) }) string {
	if recoverVolumeFileFlag == "" {
		return ""
	}
	raw, err := os.ReadFile(recoverVolumeFileFlag)
	if err != nil || len(raw) != 32 {
		logger.Warnw("skipping volume label, file was unreadable or not 32 bytes", "path", recoverVolumeFileFlag)
		return ""
	}
	var field [32]byte
	copy(field[:], raw)
	return metadata.DecodeVolumeLabel(field)
}
