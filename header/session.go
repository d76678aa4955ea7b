package header

import (
	"strconv"
	"strings"

	"github.com/greywire/rtsp/internal/grammar"
	"github.com/greywire/rtsp/message"
)

// Session is the Session header: `<id>[;timeout=<seconds>][;<opaque>...]`.
// Unknown parameters are tolerated and preserved verbatim in Params; Timeout
// is found by scanning Params for a "timeout" key rather than assuming it
// occupies a fixed position.
type Session struct {
	ID     string
	Params []grammar.Param
}

func (*Session) CanonicName() message.HeaderName { return "Session" }

func (s *Session) RenderValue() string {
	var sb strings.Builder
	sb.WriteString(s.ID)
	for _, p := range s.Params {
		sb.WriteByte(';')
		sb.WriteString(p.Name)
		if p.HasValue {
			sb.WriteByte('=')
			if p.Quoted {
				sb.WriteString(grammar.QuoteString(p.Value))
			} else {
				sb.WriteString(p.Value)
			}
		}
	}
	return sb.String()
}

func (s *Session) InsertInto(hm *message.HeaderMap) {
	hm.Insert(s.CanonicName(), message.HeaderValue(s.RenderValue()))
}

func (s *Session) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(s.CanonicName())
	if !ok {
		return false, nil
	}
	raw := grammar.TrimSP(string(v))
	id, rest, hasRest := grammar.SplitOnce(raw, ';')
	if id == "" {
		return false, malformed()
	}

	var params []grammar.Param
	if hasRest {
		var err error
		params, err = grammar.ParseParams(";" + rest)
		if err != nil {
			return false, malformed(err)
		}
	}

	s.ID = id
	s.Params = params
	return true, nil
}

func (s *Session) IsValid() bool { return s.ID != "" }

// Timeout returns the "timeout" parameter's value in seconds, if present and
// well-formed.
func (s *Session) Timeout() (uint64, bool) {
	p, ok := grammar.FindParam(s.Params, "timeout")
	if !ok || !p.HasValue {
		return 0, false
	}
	n, err := strconv.ParseUint(p.Value, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
