package header

import (
	"strings"

	"github.com/greywire/rtsp/internal/grammar"
	"github.com/greywire/rtsp/message"
)

// Known Range/Media-Range unit tokens.
const (
	RangeUnitNPT         = "npt"
	RangeUnitSMPTE       = "smpte"
	RangeUnitSMPTE30Drop = "smpte-30-drop"
	RangeUnitSMPTE25     = "smpte-25"
	RangeUnitClock       = "clock"
)

// RangeSpec is one `unit=[from]-[to]` element, or an opaque free-form token
// when the value carries no recognised `unit=from-to` structure. From/To are
// the raw time strings (e.g. "10.5", "now", "20221201T120000Z"); this package
// does not further decode the unit-specific time grammar.
type RangeSpec struct {
	Unit   string
	From   string
	To     string
	Opaque string
}

func (r RangeSpec) String() string {
	if r.Unit == "" {
		return r.Opaque
	}
	var sb strings.Builder
	sb.WriteString(r.Unit)
	sb.WriteByte('=')
	sb.WriteString(r.From)
	sb.WriteByte('-')
	sb.WriteString(r.To)
	return sb.String()
}

func parseRangeSpec(s string) (RangeSpec, error) {
	unit, rest, ok := grammar.SplitOnce(s, '=')
	if !ok {
		if !grammar.IsToken(s) {
			return RangeSpec{}, malformed()
		}
		return RangeSpec{Opaque: s}, nil
	}
	from, to, ok := grammar.SplitOnce(rest, '-')
	if !ok {
		return RangeSpec{}, malformed()
	}
	return RangeSpec{Unit: unit, From: from, To: to}, nil
}

// Range is the Range header: the requested or reported playback interval.
type Range struct {
	Spec RangeSpec
}

func (*Range) CanonicName() message.HeaderName { return "Range" }

func (r *Range) RenderValue() string { return r.Spec.String() }

func (r *Range) InsertInto(hm *message.HeaderMap) {
	hm.Insert(r.CanonicName(), message.HeaderValue(r.RenderValue()))
}

func (r *Range) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(r.CanonicName())
	if !ok {
		return false, nil
	}
	spec, err := parseRangeSpec(grammar.TrimSP(string(v)))
	if err != nil {
		return false, malformed(err)
	}
	r.Spec = spec
	return true, nil
}

func (r *Range) IsValid() bool { return true }

// MediaRangeHeader is the Media-Range header: the full seekable extent of
// the media, as a list of [RangeSpec] values (named MediaRangeHeader to
// avoid colliding with [MediaRange], the Accept/Content-Type media type).
type MediaRangeHeader struct {
	Specs []RangeSpec
}

func (*MediaRangeHeader) CanonicName() message.HeaderName { return "Media-Range" }

func (m *MediaRangeHeader) RenderValue() string {
	toks := make([]string, len(m.Specs))
	for i, s := range m.Specs {
		toks[i] = s.String()
	}
	return strings.Join(toks, ", ")
}

func (m *MediaRangeHeader) InsertInto(hm *message.HeaderMap) {
	hm.Insert(m.CanonicName(), message.HeaderValue(m.RenderValue()))
}

func (m *MediaRangeHeader) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(m.CanonicName())
	if !ok {
		return false, nil
	}
	var specs []RangeSpec
	for _, part := range grammar.SplitTopLevel(string(v), ',') {
		s, err := parseRangeSpec(grammar.TrimSP(part))
		if err != nil {
			return false, malformed(err)
		}
		specs = append(specs, s)
	}
	m.Specs = specs
	return true, nil
}

func (m *MediaRangeHeader) IsValid() bool { return true }
