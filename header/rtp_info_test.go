package header_test

import (
	"testing"

	"github.com/greywire/rtsp/header"
	"github.com/greywire/rtsp/message"
)

func TestRTPInfo_V1Form(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("RTP-Info", "url=rtsp://example.com/stream/track1;seq=45102;rtptime=12345678")

	got, err := header.GetTyped[header.RTPInfo](hm)
	if err != nil || got == nil {
		t.Fatalf("got %+v, err %v", got, err)
	}
	if got.V2 {
		t.Fatal("expected the v1 form")
	}
	if len(got.ItemsV1) != 1 {
		t.Fatalf("got %d items", len(got.ItemsV1))
	}
	item := got.ItemsV1[0]
	if item.URL != "rtsp://example.com/stream/track1" {
		t.Fatalf("got URL %q", item.URL)
	}
	if item.Seq == nil || *item.Seq != 45102 {
		t.Fatalf("got seq %v", item.Seq)
	}
	if item.RTPTime == nil || *item.RTPTime != 12345678 {
		t.Fatalf("got rtptime %v", item.RTPTime)
	}
}

func TestRTPInfo_V2FormWithSSRCAndParams(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("RTP-Info", `url="rtsp://example.com/stream/track1" ssrc=0d12f3a9:seq=1;rtptime=0`)

	got, err := header.GetTyped[header.RTPInfo](hm)
	if err != nil || got == nil {
		t.Fatalf("got %+v, err %v", got, err)
	}
	if !got.V2 {
		t.Fatal("expected the v2 form")
	}
	if len(got.ItemsV2) != 1 {
		t.Fatalf("got %d items", len(got.ItemsV2))
	}
	item := got.ItemsV2[0]
	if item.URL != "rtsp://example.com/stream/track1" || len(item.SSRCInfos) != 1 {
		t.Fatalf("got %+v", item)
	}
	ssrc := item.SSRCInfos[0]
	if ssrc.SSRC != "0d12f3a9" {
		t.Fatalf("got %+v", ssrc)
	}
	if ssrc.Seq == nil || *ssrc.Seq != 1 {
		t.Fatalf("got seq %v", ssrc.Seq)
	}
	if ssrc.RTPTime == nil || *ssrc.RTPTime != 0 {
		t.Fatalf("got rtptime %v", ssrc.RTPTime)
	}
}

func TestRTPInfo_V2MultipleEntries(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("RTP-Info", `url="rtsp://a/1" ssrc=11111111, url="rtsp://a/2" ssrc=22222222`)

	got, err := header.GetTyped[header.RTPInfo](hm)
	if err != nil || got == nil || len(got.ItemsV2) != 2 {
		t.Fatalf("got %+v, err %v", got, err)
	}
	if len(got.ItemsV2[0].SSRCInfos) != 1 || len(got.ItemsV2[1].SSRCInfos) != 1 {
		t.Fatalf("got %+v", got.ItemsV2)
	}
	if got.ItemsV2[0].SSRCInfos[0].SSRC != "11111111" || got.ItemsV2[1].SSRCInfos[0].SSRC != "22222222" {
		t.Fatalf("got %+v", got.ItemsV2)
	}
}

func TestRTPInfo_V2MultipleSSRCPerURL(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("RTP-Info", `url="rtsp://example.com/foo/audio" ssrc=0A13C760:seq=45102;rtptime=12345678 ssrc=9A9DE123:seq=30211;rtptime=29567112`)

	got, err := header.GetTyped[header.RTPInfo](hm)
	if err != nil || got == nil || len(got.ItemsV2) != 1 {
		t.Fatalf("got %+v, err %v", got, err)
	}
	item := got.ItemsV2[0]
	if len(item.SSRCInfos) != 2 {
		t.Fatalf("got %d ssrc infos", len(item.SSRCInfos))
	}
	first, second := item.SSRCInfos[0], item.SSRCInfos[1]
	if first.SSRC != "0A13C760" || first.Seq == nil || *first.Seq != 45102 || first.RTPTime == nil || *first.RTPTime != 12345678 {
		t.Fatalf("got first %+v", first)
	}
	if second.SSRC != "9A9DE123" || second.Seq == nil || *second.Seq != 30211 || second.RTPTime == nil || *second.RTPTime != 29567112 {
		t.Fatalf("got second %+v", second)
	}

	rendered := got.RenderValue()
	hm2 := message.NewHeaderMap()
	hm2.Insert("RTP-Info", message.HeaderValue(rendered))
	reparsed, err := header.GetTyped[header.RTPInfo](hm2)
	if err != nil || reparsed == nil || len(reparsed.ItemsV2) != 1 || len(reparsed.ItemsV2[0].SSRCInfos) != 2 {
		t.Fatalf("round-trip failed: %+v, err %v", reparsed, err)
	}
}

func TestRTPInfo_V1UnknownFieldIsMalformed(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("RTP-Info", "url=rtsp://a/1;bogus=1")
	if _, err := header.GetTyped[header.RTPInfo](hm); err == nil {
		t.Fatal("want error for an unrecognised v1 field")
	}
}
