package header_test

import (
	"testing"

	"github.com/greywire/rtsp/header"
	"github.com/greywire/rtsp/message"
)

func TestMediaProperties_TagsAndQuotedScales(t *testing.T) {
	hm := message.NewHeaderMap()
	hm.Insert("Media-Properties", `Random-Access=0.5, Dynamic, Scales="1, 2, 3"`)

	got, err := header.GetTyped[header.MediaProperties](hm)
	if err != nil || got == nil {
		t.Fatalf("got %+v, err %v", got, err)
	}
	if !got.Has(header.PropDynamic) {
		t.Fatal("expected Dynamic to be present")
	}
	if !got.Has(header.PropRandomAccess) {
		t.Fatal("expected Random-Access to be present")
	}
	scales, ok := got.Scales()
	if !ok || scales != "1, 2, 3" {
		t.Fatalf("got %q, %v", scales, ok)
	}
	if len(got.Tags) != 3 {
		t.Fatalf("expected the embedded comma in Scales not to split the list, got %d tags", len(got.Tags))
	}
}

func TestMediaProperties_Absent(t *testing.T) {
	hm := message.NewHeaderMap()
	got, err := header.GetTyped[header.MediaProperties](hm)
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%+v, %v)", got, err)
	}
}
