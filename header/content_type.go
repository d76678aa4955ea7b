package header

import (
	"github.com/greywire/rtsp/internal/grammar"
	"github.com/greywire/rtsp/message"
)

// ContentType is the Content-Type header: the media type of the message
// body, same grammar as a single [Accept] element.
type ContentType struct {
	MediaRange
}

func (*ContentType) CanonicName() message.HeaderName { return "Content-Type" }

func (c *ContentType) RenderValue() string { return c.MediaRange.String() }

func (c *ContentType) InsertInto(hm *message.HeaderMap) {
	hm.Insert(c.CanonicName(), message.HeaderValue(c.RenderValue()))
}

func (c *ContentType) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(c.CanonicName())
	if !ok {
		return false, nil
	}
	mr, err := parseMediaRange(grammar.TrimSP(string(v)))
	if err != nil {
		return false, malformed(err)
	}
	c.MediaRange = mr
	return true, nil
}

func (c *ContentType) IsValid() bool { return true }
