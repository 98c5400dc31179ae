package capture

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

func writeTestCapture(t *testing.T, payloads [][]byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.pcap")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating capture file: %v", err)
	}
	defer f.Close()

	writer := pcapgo.NewWriter(f)
	if err := writer.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		t.Fatalf("writing pcap header: %v", err)
	}

	for _, payload := range payloads {
		eth := layers.Ethernet{
			EthernetType: layers.EthernetTypeIPv4,
			SrcMAC:       net.HardwareAddr{0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
			DstMAC:       net.HardwareAddr{0x00, 0x00, 0x00, 0x00, 0x00, 0x02},
		}
		ip := layers.IPv4{Version: 4, IHL: 5, TTL: 64, Protocol: layers.IPProtocolUDP, SrcIP: net.IPv4(127, 0, 0, 1), DstIP: net.IPv4(127, 0, 0, 1)}
		udp := layers.UDP{SrcPort: 5000, DstPort: 5001}
		_ = udp.SetNetworkLayerForChecksum(&ip)

		buf := gopacket.NewSerializeBuffer()
		opts := gopacket.SerializeOptions{ComputeChecksums: true, FixLengths: true}
		if err := gopacket.SerializeLayers(buf, opts, &eth, &ip, &udp, gopacket.Payload(payload)); err != nil {
			t.Fatalf("serializing packet: %v", err)
		}

		ci := gopacket.CaptureInfo{Timestamp: time.Now(), CaptureLength: len(buf.Bytes()), Length: len(buf.Bytes())}
		if err := writer.WritePacket(ci, buf.Bytes()); err != nil {
			t.Fatalf("writing packet: %v", err)
		}
	}

	return path
}

func TestExtractResponsesFiltersByLength(t *testing.T) {
	discKeyPayload := make([]byte, discKeyResponseLen)
	discKeyPayload[0], discKeyPayload[1] = 0x08, 0x00

	titleKeyPayload := make([]byte, titleKeyResponseLen)
	titleKeyPayload[4] = 0x80

	noise := []byte("not a css response")

	path := writeTestCapture(t, [][]byte{noise, discKeyPayload, titleKeyPayload})

	responses, err := ExtractResponses(path)
	if err != nil {
		t.Fatalf("ExtractResponses() unexpected error: %v", err)
	}
	if len(responses) != 2 {
		t.Fatalf("got %d responses, want 2 (disc key + title key)", len(responses))
	}

	if len(responses[0].Payload) != discKeyResponseLen {
		t.Errorf("responses[0] length = %d, want %d", len(responses[0].Payload), discKeyResponseLen)
	}
	if len(responses[1].Payload) != titleKeyResponseLen {
		t.Errorf("responses[1] length = %d, want %d", len(responses[1].Payload), titleKeyResponseLen)
	}
}

func TestExtractResponsesEmptyCapture(t *testing.T) {
	path := writeTestCapture(t, nil)

	responses, err := ExtractResponses(path)
	if err != nil {
		t.Fatalf("ExtractResponses() unexpected error: %v", err)
	}
	if len(responses) != 0 {
		t.Fatalf("got %d responses from an empty capture, want 0", len(responses))
	}
}
