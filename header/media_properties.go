package header

import (
	"strings"

	"github.com/greywire/rtsp/internal/grammar"
	"github.com/greywire/rtsp/message"
)

// Known Media-Properties tags.
const (
	PropRandomAccess    = "Random-Access"
	PropBeginningOnly   = "Beginning-Only"
	PropNoSeeking       = "No-Seeking"
	PropImmutable       = "Immutable"
	PropDynamic         = "Dynamic"
	PropTimeProgressing = "Time-Progressing"
	PropUnlimited       = "Unlimited"
	PropTimeLimited     = "Time-Limited"
	PropTimeDuration    = "Time-Duration"
	PropScales          = "Scales"
)

// MediaProperties is the Media-Properties header: a comma-separated list of
// tagged properties, each optionally carrying a value. Unknown tags are
// preserved as ordinary entries (the Extension case from §4.4.2), since a
// [grammar.Param] already carries any name verbatim.
type MediaProperties struct {
	Tags []grammar.Param
}

func (*MediaProperties) CanonicName() message.HeaderName { return "Media-Properties" }

func (m *MediaProperties) RenderValue() string {
	toks := make([]string, len(m.Tags))
	for i, p := range m.Tags {
		var sb strings.Builder
		sb.WriteString(p.Name)
		if p.HasValue {
			sb.WriteByte('=')
			if p.Quoted {
				sb.WriteString(grammar.QuoteString(p.Value))
			} else {
				sb.WriteString(p.Value)
			}
		}
		toks[i] = sb.String()
	}
	return strings.Join(toks, ", ")
}

func (m *MediaProperties) InsertInto(hm *message.HeaderMap) {
	hm.Insert(m.CanonicName(), message.HeaderValue(m.RenderValue()))
}

func (m *MediaProperties) AppendTo(hm *message.HeaderMap) {
	hm.Append(m.CanonicName(), message.HeaderValue(m.RenderValue()))
}

func (m *MediaProperties) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(m.CanonicName())
	if !ok {
		return false, nil
	}
	var tags []grammar.Param
	for _, part := range grammar.SplitTopLevel(string(v), ',') {
		part = grammar.TrimSP(part)
		if part == "" {
			continue
		}
		p, rest, err := grammar.ScanParam(part)
		if err != nil || grammar.TrimSP(rest) != "" {
			return false, malformed(err)
		}
		tags = append(tags, p)
	}
	m.Tags = tags
	return true, nil
}

func (m *MediaProperties) IsValid() bool { return true }

// Has reports whether tag (e.g. [PropImmutable]) is present.
func (m *MediaProperties) Has(tag string) bool {
	_, ok := grammar.FindParam(m.Tags, tag)
	return ok
}

// Scales returns the raw, comma-joined contents of the Scales="..." value,
// if present.
func (m *MediaProperties) Scales() (string, bool) {
	p, ok := grammar.FindParam(m.Tags, PropScales)
	if !ok {
		return "", false
	}
	return p.Value, true
}
