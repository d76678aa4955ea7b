package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/greywire/rtsp/header"
	"github.com/greywire/rtsp/message"
)

// TestTransport_RoundTripStructure parses a Transport header, renders it
// back out, reparses the rendered form, and diffs the two parsed structures
// with cmp.Diff. RtpTransport carries several *uint8/*PortRange pointer
// fields and a parallel-slice address list; a field-by-field
// assertion here would either miss a drifted pointer field or take many
// lines to spell out each one, where cmp.Diff reports exactly which field
// changed.
func TestTransport_RoundTripStructure(t *testing.T) {
	const raw = `RTP/AVP;unicast;client_port=3456-3457;mode="PLAY"`

	hm := message.NewHeaderMap()
	hm.Insert("Transport", raw)

	first, err := header.GetTyped[header.Transport](hm)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	hm2 := message.NewHeaderMap()
	header.SetTyped(hm2, first)

	second, err := header.GetTyped[header.Transport](hm2)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("round-tripped Transport differs (-first +second):\n%s", diff)
	}
}
