package header

import (
	"strings"

	"github.com/greywire/rtsp/internal/grammar"
	"github.com/greywire/rtsp/message"
)

// Known feature tags per RFC 7826 §17.
const (
	FeaturePlayBasic       = "play.basic"
	FeaturePlayScale       = "play.scale"
	FeaturePlaySpeed       = "play.speed"
	FeatureSetupRTPRTCPMux = "setup.rtp.rtcp.mux"
)

// FeatureList is the shared representation of Require, Supported and
// Unsupported: an ordered list of feature tags.
type FeatureList struct {
	Tags []string
}

func renderFeatureList(f FeatureList) string { return strings.Join(f.Tags, ", ") }

func parseFeatureList(v string) (FeatureList, error) {
	var tags []string
	for _, p := range grammar.SplitTopLevel(v, ',') {
		tok := grammar.TrimSP(p)
		if !grammar.IsToken(tok) {
			return FeatureList{}, malformed()
		}
		tags = append(tags, tok)
	}
	return FeatureList{Tags: tags}, nil
}

// Has reports whether tag is present (case-sensitive, tags are tokens).
func (f FeatureList) Has(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (f FeatureList) HasPlayBasic() bool       { return f.Has(FeaturePlayBasic) }
func (f FeatureList) HasPlayScale() bool       { return f.Has(FeaturePlayScale) }
func (f FeatureList) HasPlaySpeed() bool       { return f.Has(FeaturePlaySpeed) }
func (f FeatureList) HasSetupRTPRTCPMux() bool { return f.Has(FeatureSetupRTPRTCPMux) }

// Require is the Require header: feature tags the server must support to
// process the request, or the request must fail with 551.
type Require struct{ FeatureList }

func (*Require) CanonicName() message.HeaderName { return "Require" }
func (r *Require) RenderValue() string           { return renderFeatureList(r.FeatureList) }
func (r *Require) InsertInto(hm *message.HeaderMap) {
	hm.Insert(r.CanonicName(), message.HeaderValue(r.RenderValue()))
}
func (r *Require) AppendTo(hm *message.HeaderMap) {
	hm.Append(r.CanonicName(), message.HeaderValue(r.RenderValue()))
}
func (r *Require) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(r.CanonicName())
	if !ok {
		return false, nil
	}
	fl, err := parseFeatureList(string(v))
	if err != nil {
		return false, malformed(err)
	}
	r.FeatureList = fl
	return true, nil
}
func (r *Require) IsValid() bool { return true }

// Supported is the Supported header: feature tags the sender supports.
type Supported struct{ FeatureList }

func (*Supported) CanonicName() message.HeaderName { return "Supported" }
func (s *Supported) RenderValue() string           { return renderFeatureList(s.FeatureList) }
func (s *Supported) InsertInto(hm *message.HeaderMap) {
	hm.Insert(s.CanonicName(), message.HeaderValue(s.RenderValue()))
}
func (s *Supported) AppendTo(hm *message.HeaderMap) {
	hm.Append(s.CanonicName(), message.HeaderValue(s.RenderValue()))
}
func (s *Supported) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(s.CanonicName())
	if !ok {
		return false, nil
	}
	fl, err := parseFeatureList(string(v))
	if err != nil {
		return false, malformed(err)
	}
	s.FeatureList = fl
	return true, nil
}
func (s *Supported) IsValid() bool { return true }

// Unsupported is the Unsupported header: feature tags the server could not
// honor, returned on a 551 response.
type Unsupported struct{ FeatureList }

func (*Unsupported) CanonicName() message.HeaderName { return "Unsupported" }
func (u *Unsupported) RenderValue() string           { return renderFeatureList(u.FeatureList) }
func (u *Unsupported) InsertInto(hm *message.HeaderMap) {
	hm.Insert(u.CanonicName(), message.HeaderValue(u.RenderValue()))
}
func (u *Unsupported) AppendTo(hm *message.HeaderMap) {
	hm.Append(u.CanonicName(), message.HeaderValue(u.RenderValue()))
}
func (u *Unsupported) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(u.CanonicName())
	if !ok {
		return false, nil
	}
	fl, err := parseFeatureList(string(v))
	if err != nil {
		return false, malformed(err)
	}
	u.FeatureList = fl
	return true, nil
}
func (u *Unsupported) IsValid() bool { return true }
