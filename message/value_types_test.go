package message_test

import (
	"testing"

	"github.com/greywire/rtsp/message"
)

func TestRequestURI_IsValid(t *testing.T) {
	if !message.RequestURI("rtsp://example.com/test").IsValid() {
		t.Fatal("expected a valid request URI")
	}
	if message.RequestURI("").IsValid() {
		t.Fatal("empty request URI should be invalid")
	}
	if message.RequestURI("has space").IsValid() {
		t.Fatal("a space is not VCHAR and should be invalid")
	}
}

func TestHeaderValue_RejectsNonUTF8(t *testing.T) {
	if _, err := message.NewHeaderValue("plain text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := message.NewHeaderValue(string([]byte{0xff, 0xfe})); err == nil {
		t.Fatal("expected an error for invalid UTF-8")
	}
}

func TestHeaderName_RejectsNonASCII(t *testing.T) {
	if _, err := message.NewHeaderName("X-Custom"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := message.NewHeaderName("X-Cust\xffom"); err == nil {
		t.Fatal("expected an error for a non-ASCII header name")
	}
}
