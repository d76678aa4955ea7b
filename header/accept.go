package header

import (
	"strings"

	"github.com/greywire/rtsp/internal/grammar"
	"github.com/greywire/rtsp/message"
)

// Accept is the Accept header: an ordered list of media-type ranges the
// client is willing to receive in a DESCRIBE response.
type Accept struct {
	Ranges []MediaRange
}

func (*Accept) CanonicName() message.HeaderName { return "Accept" }

func (a *Accept) RenderValue() string {
	toks := make([]string, len(a.Ranges))
	for i, r := range a.Ranges {
		toks[i] = r.String()
	}
	return strings.Join(toks, ", ")
}

func (a *Accept) InsertInto(hm *message.HeaderMap) {
	hm.Insert(a.CanonicName(), message.HeaderValue(a.RenderValue()))
}

func (a *Accept) AppendTo(hm *message.HeaderMap) {
	hm.Append(a.CanonicName(), message.HeaderValue(a.RenderValue()))
}

func (a *Accept) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(a.CanonicName())
	if !ok {
		return false, nil
	}
	var ranges []MediaRange
	for _, part := range grammar.SplitTopLevel(string(v), ',') {
		mr, err := parseMediaRange(grammar.TrimSP(part))
		if err != nil {
			return false, malformed(err)
		}
		ranges = append(ranges, mr)
	}
	a.Ranges = ranges
	return true, nil
}

func (a *Accept) IsValid() bool { return true }
