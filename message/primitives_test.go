package message_test

import (
	"testing"

	"github.com/greywire/rtsp/message"
)

func TestVersion_ParseAndString(t *testing.T) {
	cases := []struct {
		in   string
		want message.Version
	}{
		{"RTSP/1.0", message.V1_0},
		{"RTSP/2.0", message.V2_0},
	}
	for _, c := range cases {
		v, err := message.ParseVersion(c.in)
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", c.in, err)
		}
		if v != c.want {
			t.Fatalf("got %v, want %v", v, c.want)
		}
		if v.String() != c.in {
			t.Fatalf("String() = %q, want %q", v.String(), c.in)
		}
	}
	if _, err := message.ParseVersion("RTSP/3.0"); err == nil {
		t.Fatal("expected an error for an unknown version")
	}
}

func TestStatusCode_RoundTripsByConstruction(t *testing.T) {
	// The original implementation this was distilled from aliased 456 and 457
	// onto the same enum variant; here the code IS the number, so every
	// value, known or not, round-trips as the identity.
	for _, n := range []uint16{200, 456, 457, 999} {
		code := message.StatusCode(n)
		if uint16(code) != n {
			t.Fatalf("code %d did not round-trip", n)
		}
	}
	if !message.HeaderFieldNotValidForResource.IsKnown() || !message.InvalidRange.IsKnown() {
		t.Fatal("456 and 457 should both be known, distinct codes")
	}
	if message.HeaderFieldNotValidForResource == message.InvalidRange {
		t.Fatal("456 and 457 must not alias")
	}
}

func TestMethod_IsExtension(t *testing.T) {
	if message.Describe.IsExtension() {
		t.Fatal("DESCRIBE is a known method")
	}
	if !message.Method("WOBBLE").IsExtension() {
		t.Fatal("WOBBLE should be an extension method")
	}
}

func TestHeaderName_CaseInsensitive(t *testing.T) {
	a, _ := message.NewHeaderName("Content-Type")
	b, _ := message.NewHeaderName("CONTENT-TYPE")
	if !a.Equal(b) {
		t.Fatal("names differing only in case should be equal")
	}
	if a.Compare(b) != 0 {
		t.Fatal("case-folded compare should treat them as equal order")
	}
	if a.String() != "Content-Type" {
		t.Fatalf("String() should preserve original case, got %q", a.String())
	}
	if _, err := message.NewHeaderName("Bad\x80Name"); err == nil {
		t.Fatal("expected an error for non-ASCII header name")
	}
}

func TestHeaderMap_AppendSemantics(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("Supported", "a")
	hm.Append("Supported", "b")
	got, _ := hm.Get("Supported")
	if got != "a, b" {
		t.Fatalf("got %q, want \"a, b\"", got)
	}

	hm2 := message.NewHeaderMap()
	hm2.Append("Supported", "only")
	got2, _ := hm2.Get("Supported")
	if got2 != "only" {
		t.Fatalf("append to absent header should behave like insert, got %q", got2)
	}
}

func TestHeaderMap_NamesDeterministicOrder(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("CSeq", "1")
	hm.Insert("Content-Type", "a/b")
	hm.Insert("Content-Length", "0")

	names := hm.Names()
	got := make([]string, len(names))
	for i, n := range names {
		got[i] = n.String()
	}
	want := []string{"Content-Length", "Content-Type", "CSeq"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBody_Containers(t *testing.T) {
	if (message.Empty{}).Bytes() != nil {
		t.Fatal("Empty should always report a nil body")
	}
	if string(message.String("x").Bytes()) != "x" {
		t.Fatal("String body should round-trip through Bytes")
	}
}

func TestMessage_KindHelpers(t *testing.T) {
	req := message.NewRequestBuilder[message.Bytes](message.Options, message.V2_0).Empty()
	var m message.Message[message.Bytes] = req
	if !message.IsRequest(m) || message.IsResponse(m) || message.IsData(m) {
		t.Fatal("IsRequest/IsResponse/IsData disagree with actual kind")
	}
	if _, ok := message.AsRequest(m); !ok {
		t.Fatal("AsRequest should succeed on a request")
	}
	if _, ok := message.AsResponse(m); ok {
		t.Fatal("AsResponse should fail on a request")
	}
}

func TestOwned_ToOwnedRequest(t *testing.T) {
	borrowed := &message.Request[message.Bytes]{
		Method:  message.Play,
		Version: message.V2_0,
		Headers: message.NewHeaderMap(),
		Body:    message.Bytes("hello"),
	}
	owned := message.ToOwnedRequest(borrowed, func(b []byte) message.String {
		return message.String(string(b))
	})
	if owned.Body != message.String("hello") {
		t.Fatalf("got %q", owned.Body)
	}
	if owned.Method != message.Play {
		t.Fatalf("got %v", owned.Method)
	}
}
