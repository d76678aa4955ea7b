package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/greywire/rtsp/message"
)

// ContentLength is the Content-Length header: the body's size in octets.
// Builders maintain this header automatically (§4.3); this type exists for
// callers that need to read or set it directly.
type ContentLength struct {
	Value uint64
}

func (*ContentLength) CanonicName() message.HeaderName { return "Content-Length" }

func (c *ContentLength) RenderValue() string { return strconv.FormatUint(c.Value, 10) }

func (c *ContentLength) InsertInto(hm *message.HeaderMap) {
	hm.Insert(c.CanonicName(), message.HeaderValue(c.RenderValue()))
}

func (c *ContentLength) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(c.CanonicName())
	if !ok {
		return false, nil
	}
	n, err := strconv.ParseUint(string(v), 10, 64)
	if err != nil {
		return false, errtrace.Wrap(malformed(err))
	}
	c.Value = n
	return true, nil
}

func (c *ContentLength) IsValid() bool { return true }
