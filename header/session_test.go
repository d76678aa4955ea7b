package header_test

import (
	"testing"

	"github.com/greywire/rtsp/header"
	"github.com/greywire/rtsp/message"
)

func TestSession_WithTimeout(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("Session", "47112344;timeout=60")

	got, err := header.GetTyped[header.Session](hm)
	if err != nil || got == nil {
		t.Fatalf("got %+v, err %v", got, err)
	}
	if got.ID != "47112344" {
		t.Fatalf("got ID %q", got.ID)
	}
	timeout, ok := got.Timeout()
	if !ok || timeout != 60 {
		t.Fatalf("got timeout %d, %v", timeout, ok)
	}
}

func TestSession_NoParams(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("Session", "abc123")

	got, err := header.GetTyped[header.Session](hm)
	if err != nil || got == nil || got.ID != "abc123" {
		t.Fatalf("got %+v, err %v", got, err)
	}
	if _, ok := got.Timeout(); ok {
		t.Fatal("expected no timeout parameter")
	}
}

func TestSession_TimeoutNotFirstParam(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("Session", "abc123;extra=1;timeout=30;other")

	got, err := header.GetTyped[header.Session](hm)
	if err != nil || got == nil {
		t.Fatalf("got %+v, err %v", got, err)
	}
	timeout, ok := got.Timeout()
	if !ok || timeout != 30 {
		t.Fatalf("got %d, %v", timeout, ok)
	}
}

func TestSession_EmptyIDIsMalformed(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("Session", ";timeout=30")
	if _, err := header.GetTyped[header.Session](hm); err == nil {
		t.Fatal("want error for empty session id")
	}
}
