// cssvault recovers, applies, and inspects DVD CSS key material against
// disc images and drive-session captures.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var ConfigFlag string

func main() {
	rootCmd := &cobra.Command{
		Use:   "cssvault",
		Short: "DVD CSS key recovery and sector decryption toolkit",
	}
	rootCmd.PersistentFlags().StringVarP(&ConfigFlag, "config", "c", ".", "Path to the directory containing config.yaml")

	rootCmd.AddCommand(recoverCmd)
	rootCmd.AddCommand(decryptSectorCmd)
	rootCmd.AddCommand(regionCheckCmd)
	rootCmd.AddCommand(captureExtractCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
