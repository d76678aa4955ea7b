package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/greywire/rtsp/message"
)

// Scale is the Scale header: the playback rate multiplier relative to normal
// speed, negative for reverse play.
type Scale struct {
	Value float64
}

func (*Scale) CanonicName() message.HeaderName { return "Scale" }

func (s *Scale) RenderValue() string { return strconv.FormatFloat(s.Value, 'g', -1, 64) }

func (s *Scale) InsertInto(hm *message.HeaderMap) {
	hm.Insert(s.CanonicName(), message.HeaderValue(s.RenderValue()))
}

func (s *Scale) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(s.CanonicName())
	if !ok {
		return false, nil
	}
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		return false, errtrace.Wrap(malformed(err))
	}
	s.Value = f
	return true, nil
}

func (s *Scale) IsValid() bool { return true }
