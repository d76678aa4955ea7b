package log_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/greywire/rtsp/log"
)

func TestNoop_DiscardsEverything(t *testing.T) {
	if log.Noop.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("Noop should never be enabled")
	}
	log.Noop.Error("should be discarded", "err", errors.New("boom"))
}

func TestFmtValue_RendersLazily(t *testing.T) {
	v := log.FmtValue(struct{ A int }{A: 1}, false)
	got := v.LogValue().String()
	if got == "" {
		t.Fatal("expected non-empty rendering")
	}
}

func TestStringValue_AcceptsStringAndBytes(t *testing.T) {
	if got := log.StringValue("abc").LogValue().String(); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := log.StringValue([]byte("xyz")).LogValue().String(); got != "xyz" {
		t.Fatalf("got %q", got)
	}
}
