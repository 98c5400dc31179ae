// Package capture extracts MMC GET_KEY/REPORT_KEY response payloads from an
// offline packet capture of a USB or SCSI-over-IP drive session, so the
// cryptographic core can consume a recorded handshake instead of requiring
// live drive I/O.
package capture

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// RawResponse is one candidate MMC response payload pulled out of a capture,
// not yet validated against any fixed CSS response length.
type RawResponse struct {
	Payload   []byte
	Timestamp time.Time
}

// discKeyResponseLen and titleKeyResponseLen match the fixed layouts the
// cryptographic core expects; capture payloads of other lengths are not
// candidate GET_KEY/REPORT_KEY responses and are skipped.
const (
	discKeyResponseLen  = 2052
	titleKeyResponseLen = 12
)

// ExtractResponses reads a pcap or pcapng file at path and returns every
// application-layer payload whose length matches a disc-key or title-key
// response. It performs no CSS-specific interpretation; callers pass a
// RawResponse's Payload through css.AsDiscKeyResponse or
// css.AsTitleKeyResponse before using it.
func ExtractResponses(path string) ([]RawResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("capture: opening %s: %w", path, err)
	}
	defer f.Close()

	var reader interface {
		ReadPacketData() ([]byte, gopacket.CaptureInfo, error)
		LinkType() layers.LinkType
	}
	if pcapReader, pcapErr := pcapgo.NewReader(f); pcapErr == nil {
		reader = pcapReader
	} else {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("capture: rewinding %s: %w", path, err)
		}
		ngReader, err := pcapgo.NewNgReader(f, pcapgo.DefaultNgReaderOptions)
		if err != nil {
			return nil, fmt.Errorf("capture: reading pcap header: %w", pcapErr)
		}
		reader = ngReader
	}

	var responses []RawResponse
	for {
		data, ci, err := reader.ReadPacketData()
		if err == io.EOF {
			break
		}
		if err != nil {
			return responses, fmt.Errorf("capture: reading packet: %w", err)
		}

		packet := gopacket.NewPacket(data, reader.LinkType(), gopacket.NoCopy)
		app := packet.ApplicationLayer()
		if app == nil {
			continue
		}
		payload := app.Payload()
		if len(payload) != discKeyResponseLen && len(payload) != titleKeyResponseLen {
			continue
		}

		responses = append(responses, RawResponse{
			Payload:   append([]byte(nil), payload...),
			Timestamp: ci.Timestamp,
		})
	}

	return responses, nil
}
