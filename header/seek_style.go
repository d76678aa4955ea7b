package header

import "github.com/greywire/rtsp/message"

// SeekStyleValue enumerates the Seek-Style header's recognised values.
type SeekStyleValue string

const (
	RAP        SeekStyleValue = "RAP"
	CoRAP      SeekStyleValue = "CoRAP"
	FirstPrior SeekStyleValue = "First-Prior"
	Next       SeekStyleValue = "Next"
)

// SeekStyle is the Seek-Style header. Unrecognised tokens are preserved
// verbatim in Extension rather than rejected, per §4.4.2's forward
// compatibility rule.
type SeekStyle struct {
	Value     SeekStyleValue
	Extension string
}

func (*SeekStyle) CanonicName() message.HeaderName { return "Seek-Style" }

func (s *SeekStyle) RenderValue() string {
	if s.Value == "" {
		return s.Extension
	}
	return string(s.Value)
}

func (s *SeekStyle) InsertInto(hm *message.HeaderMap) {
	hm.Insert(s.CanonicName(), message.HeaderValue(s.RenderValue()))
}

func (s *SeekStyle) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(s.CanonicName())
	if !ok {
		return false, nil
	}
	switch SeekStyleValue(v) {
	case RAP, CoRAP, FirstPrior, Next:
		s.Value = SeekStyleValue(v)
		s.Extension = ""
	default:
		s.Value = ""
		s.Extension = string(v)
	}
	return true, nil
}

func (s *SeekStyle) IsValid() bool { return s.Value != "" || s.Extension != "" }
