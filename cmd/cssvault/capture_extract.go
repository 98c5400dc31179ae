package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dvdvault/cssvault/internal/capture"
)

var (
	captureExtractPcapFlag   string
	captureExtractOutDirFlag string
)

var captureExtractCmd = &cobra.Command{
	Use:   "capture-extract",
	Short: "Extract GET_KEY/REPORT_KEY response payloads from a drive-session capture",
	Run:   CaptureExtractCommand,
}

func init() {
	captureExtractCmd.Flags().StringVar(&captureExtractPcapFlag, "pcap", "", "Path to a pcap/pcapng capture of the drive session")
	captureExtractCmd.Flags().StringVar(&captureExtractOutDirFlag, "out-dir", "", "Directory to write each extracted response payload into")
	_ = captureExtractCmd.MarkFlagRequired("pcap")
	_ = captureExtractCmd.MarkFlagRequired("out-dir")
}

func CaptureExtractCommand(cmd *cobra.Command, args []string) {
	responses, err := capture.ExtractResponses(captureExtractPcapFlag)
	if err != nil {
		fmt.Println("error extracting responses:", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(captureExtractOutDirFlag, 0o755); err != nil {
		fmt.Println("error creating output directory:", err)
		os.Exit(1)
	}

	for i, response := range responses {
		name := fmt.Sprintf("response-%03d-%dbytes.bin", i, len(response.Payload))
		path := filepath.Join(captureExtractOutDirFlag, name)
		if err := os.WriteFile(path, response.Payload, 0o644); err != nil {
			fmt.Println("error writing", path, ":", err)
			os.Exit(1)
		}
	}

	fmt.Printf("extracted %d candidate responses to %s\n", len(responses), captureExtractOutDirFlag)
}
