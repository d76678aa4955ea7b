package header

import (
	"strings"

	"github.com/greywire/rtsp/internal/grammar"
	"github.com/greywire/rtsp/message"
)

// RangeUnit enumerates the time formats a Range header may use.
type RangeUnit string

const (
	UnitNPT         RangeUnit = "npt"
	UnitSMPTE       RangeUnit = "smpte"
	UnitSMPTE30Drop RangeUnit = "smpte-30-drop"
	UnitSMPTE25     RangeUnit = "smpte-25"
	UnitClock       RangeUnit = "clock"
)

// AcceptRanges is the Accept-Ranges header: the range units a resource
// supports seeking by. Units outside the known set are preserved verbatim.
type AcceptRanges struct {
	Units []string
}

func (*AcceptRanges) CanonicName() message.HeaderName { return "Accept-Ranges" }

func (a *AcceptRanges) RenderValue() string { return strings.Join(a.Units, ", ") }

func (a *AcceptRanges) InsertInto(hm *message.HeaderMap) {
	hm.Insert(a.CanonicName(), message.HeaderValue(a.RenderValue()))
}

func (a *AcceptRanges) AppendTo(hm *message.HeaderMap) {
	hm.Append(a.CanonicName(), message.HeaderValue(a.RenderValue()))
}

func (a *AcceptRanges) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(a.CanonicName())
	if !ok {
		return false, nil
	}
	var units []string
	for _, p := range grammar.SplitTopLevel(string(v), ',') {
		tok := grammar.TrimSP(p)
		if !grammar.IsToken(tok) {
			return false, malformed()
		}
		units = append(units, tok)
	}
	a.Units = units
	return true, nil
}

// Has reports whether unit u (case-sensitive token) was listed.
func (a *AcceptRanges) Has(u RangeUnit) bool {
	for _, got := range a.Units {
		if got == string(u) {
			return true
		}
	}
	return false
}

func (a *AcceptRanges) IsValid() bool { return true }
