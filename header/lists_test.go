package header_test

import (
	"testing"

	"github.com/greywire/rtsp/header"
	"github.com/greywire/rtsp/message"
)

func TestAcceptRanges_RoundTrip(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("Accept-Ranges", "npt, smpte, clock")

	got, err := header.GetTyped[header.AcceptRanges](hm)
	if err != nil || got == nil {
		t.Fatalf("got %+v, err %v", got, err)
	}
	if !got.Has(header.UnitNPT) || !got.Has(header.UnitClock) {
		t.Fatalf("got %+v", got.Units)
	}
	if got.Has(header.UnitSMPTE30Drop) {
		t.Fatal("smpte-30-drop was not listed")
	}
}

func TestAllow_AppendSemantics(t *testing.T) {
	hm := message.NewHeaderMap()
	(&header.Allow{Methods: []message.Method{message.Play}}).InsertInto(hm)
	(&header.Allow{Methods: []message.Method{message.Pause}}).AppendTo(hm)

	v, _ := hm.Get("Allow")
	if v != "PLAY, PAUSE" {
		t.Fatalf("got %q", v)
	}

	got, err := header.GetTyped[header.Allow](hm)
	if err != nil || got == nil || len(got.Methods) != 2 {
		t.Fatalf("got %+v, err %v", got, err)
	}
}

func TestPublic_RoundTrip(t *testing.T) {
	hm := message.NewHeaderMap()
	(&header.Public{Methods: []message.Method{message.Options, message.Describe}}).InsertInto(hm)

	got, err := header.GetTyped[header.Public](hm)
	if err != nil || got == nil || len(got.Methods) != 2 {
		t.Fatalf("got %+v, err %v", got, err)
	}
	if got.Methods[0] != message.Options || got.Methods[1] != message.Describe {
		t.Fatalf("got %+v", got.Methods)
	}
}

func TestSupported_FeatureHelpers(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("Supported", "play.basic, play.scale")

	got, err := header.GetTyped[header.Supported](hm)
	if err != nil || got == nil {
		t.Fatalf("got %+v, err %v", got, err)
	}
	if !got.HasPlayBasic() || !got.HasPlayScale() {
		t.Fatal("expected play.basic and play.scale to be set")
	}
	if got.HasPlaySpeed() || got.HasSetupRTPRTCPMux() {
		t.Fatal("unexpected feature tag reported present")
	}
}

func TestRequireUnsupported_RoundTrip(t *testing.T) {
	hm := message.NewHeaderMap()
	(&header.Require{FeatureList: header.FeatureList{Tags: []string{header.FeaturePlayBasic}}}).InsertInto(hm)
	(&header.Unsupported{FeatureList: header.FeatureList{Tags: []string{header.FeatureSetupRTPRTCPMux}}}).InsertInto(hm)

	req, err := header.GetTyped[header.Require](hm)
	if err != nil || req == nil || !req.Has(header.FeaturePlayBasic) {
		t.Fatalf("got %+v, err %v", req, err)
	}
	unsup, err := header.GetTyped[header.Unsupported](hm)
	if err != nil || unsup == nil || !unsup.HasSetupRTPRTCPMux() {
		t.Fatalf("got %+v, err %v", unsup, err)
	}
}

func TestMethodList_MalformedToken(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("Allow", "PLAY, not a token")
	if _, err := header.GetTyped[header.Allow](hm); err == nil {
		t.Fatal("want error for a non-token method")
	}
}
