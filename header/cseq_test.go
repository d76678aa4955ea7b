package header_test

import (
	"testing"

	"github.com/greywire/rtsp/header"
	"github.com/greywire/rtsp/message"
)

func TestCSeq_RoundTrip(t *testing.T) {
	hm := message.NewHeaderMap()
	(&header.CSeq{Value: 42}).InsertInto(hm)

	got, err := header.GetTyped[header.CSeq](hm)
	if err != nil {
		t.Fatalf("GetTyped: %v", err)
	}
	if got == nil || got.Value != 42 {
		t.Fatalf("got %+v", got)
	}
}

func TestCSeq_Absent(t *testing.T) {
	hm := message.NewHeaderMap()
	got, err := header.GetTyped[header.CSeq](hm)
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", got, err)
	}
}

func TestCSeq_Malformed(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("CSeq", "not-a-number")
	if _, err := header.GetTyped[header.CSeq](hm); err == nil {
		t.Fatal("want error")
	}
}
