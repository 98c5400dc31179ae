package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dvdvault/cssvault/internal/css"
	"github.com/dvdvault/cssvault/internal/keystore"
)

var (
	decryptKeyFlag    string
	decryptInFlag     string
	decryptOutFlag    string
	decryptTitleIndex int
)

var decryptSectorCmd = &cobra.Command{
	Use:   "decrypt-sector",
	Short: "Decrypt one or more concatenated 2048-byte sectors",
	Run:   DecryptSectorCommand,
}

func init() {
	decryptSectorCmd.Flags().StringVar(&decryptKeyFlag, "key", "", "Title key as a 10-char hex string, or a stored disc-id to look up")
	decryptSectorCmd.Flags().StringVar(&decryptInFlag, "in", "", "Path to the scrambled sector data")
	decryptSectorCmd.Flags().StringVar(&decryptOutFlag, "out", "", "Path to write the decrypted sector data")
	decryptSectorCmd.Flags().IntVar(&decryptTitleIndex, "title-index", 0, "Title index to look up when --key is a disc-id")
	_ = decryptSectorCmd.MarkFlagRequired("key")
	_ = decryptSectorCmd.MarkFlagRequired("in")
	_ = decryptSectorCmd.MarkFlagRequired("out")
}

func DecryptSectorCommand(cmd *cobra.Command, args []string) {
	_, logger, store := loadEnvironment()
	defer store.Close()

	titleKey, err := resolveTitleKey(store, decryptKeyFlag, decryptTitleIndex)
	if err != nil {
		logger.Fatalw("error resolving title key", "error", err)
	}

	sectorData, err := os.ReadFile(decryptInFlag)
	if err != nil {
		logger.Fatalw("error reading sector data", "error", err)
	}
	if len(sectorData)%css.DefaultBlockSize != 0 {
		logger.Fatalw("input is not a whole number of sectors", "size", len(sectorData), "block_size", css.DefaultBlockSize)
	}
	blocks := uint32(len(sectorData) / css.DefaultBlockSize)

	cmiData := make([]byte, blocks)
	for i := range cmiData {
		cmiData[i] = 0x80
	}
	keyData := make([]byte, blocks*5)
	for i := uint32(0); i < blocks; i++ {
		copy(keyData[i*5:i*5+5], titleKey[:])
	}

	css.DecryptSector(sectorData, cmiData, keyData, blocks, css.DefaultBlockSize)

	if err := os.WriteFile(decryptOutFlag, sectorData, 0o644); err != nil {
		logger.Fatalw("error writing decrypted sectors", "error", err)
	}

	logger.Infow("decrypted sectors", "blocks", blocks, "out", decryptOutFlag)
	fmt.Printf("decrypted %d sectors to %s\n", blocks, decryptOutFlag)
}

// resolveTitleKey accepts either a literal 10-character hex title key or a
// disc identifier previously stored via `recover`, in which case the title
// key at titleIndex is looked up in the key store.
func resolveTitleKey(store *keystore.Store, keyFlag string, titleIndex int) ([5]byte, error) {
	if decoded, err := hex.DecodeString(keyFlag); err == nil && len(decoded) == 5 {
		var key [5]byte
		copy(key[:], decoded)
		return key, nil
	}

	entry, err := store.FindTitleKey(keyFlag, titleIndex)
	if err != nil {
		return [5]byte{}, fmt.Errorf("looking up title key for disc %q: %w", keyFlag, err)
	}
	if entry == nil {
		return [5]byte{}, fmt.Errorf("no stored title key for disc %q, title %d", keyFlag, titleIndex)
	}

	var key [5]byte
	copy(key[:], entry.Key)
	return key, nil
}
