package header_test

import (
	"testing"

	"github.com/greywire/rtsp/header"
	"github.com/greywire/rtsp/message"
)

func TestNotifyReason_KnownAndExtension(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("Notify-Reason", "end-of-stream")

	got, err := header.GetTyped[header.NotifyReason](hm)
	if err != nil || got == nil || got.Value != header.EndOfStream || got.Extension != "" {
		t.Fatalf("got %+v, err %v", got, err)
	}

	hm2 := message.NewHeaderMap()
	hm2.Insert("Notify-Reason", "vendor-custom-reason")
	got2, err := header.GetTyped[header.NotifyReason](hm2)
	if err != nil || got2 == nil || got2.Value != "" || got2.Extension != "vendor-custom-reason" {
		t.Fatalf("got %+v, err %v", got2, err)
	}
}

func TestSeekStyle_KnownAndExtension(t *testing.T) {
	hm := message.NewHeaderMap()
	(&header.SeekStyle{Value: header.CoRAP}).InsertInto(hm)

	got, err := header.GetTyped[header.SeekStyle](hm)
	if err != nil || got == nil || got.Value != header.CoRAP {
		t.Fatalf("got %+v, err %v", got, err)
	}

	hm2 := message.NewHeaderMap()
	hm2.Insert("Seek-Style", "Vendor-Custom")
	got2, err := header.GetTyped[header.SeekStyle](hm2)
	if err != nil || got2 == nil || got2.Extension != "Vendor-Custom" {
		t.Fatalf("got %+v, err %v", got2, err)
	}
}

func TestSeekStyle_FirstPriorRendersHyphenated(t *testing.T) {
	s := &header.SeekStyle{Value: header.FirstPrior}
	if s.RenderValue() != "First-Prior" {
		t.Fatalf("got %q", s.RenderValue())
	}
}
