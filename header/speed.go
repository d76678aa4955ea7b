package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/greywire/rtsp/message"
)

// Speed is the Speed header: the desired delivery rate, in units of normal
// playback speed. Unlike Scale, it never changes media content, only
// bandwidth.
type Speed struct {
	Value float64
}

func (*Speed) CanonicName() message.HeaderName { return "Speed" }

func (s *Speed) RenderValue() string { return strconv.FormatFloat(s.Value, 'g', -1, 64) }

func (s *Speed) InsertInto(hm *message.HeaderMap) {
	hm.Insert(s.CanonicName(), message.HeaderValue(s.RenderValue()))
}

func (s *Speed) FromHeaders(hm *message.HeaderMap) (bool, error) {
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

func (s *Speed) IsValid() bool { return true }
