package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/greywire/rtsp/message"
)

// CSeq is the CSeq header: a sequence number shared by a request and its
// response.
type CSeq struct {
	Value uint32
}

func (*CSeq) CanonicName() message.HeaderName { return "CSeq" }

func (c *CSeq) RenderValue() string { return strconv.FormatUint(uint64(c.Value), 10) }

func (c *CSeq) InsertInto(hm *message.HeaderMap) {
	hm.Insert(c.CanonicName(), message.HeaderValue(c.RenderValue()))
}

// FromHeaders reports (false, nil) when CSeq is absent.
func (c *CSeq) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(c.CanonicName())
	if !ok {
		return false, nil
	}
	n, err := strconv.ParseUint(string(v), 10, 32)
	if err != nil {
		return false, errtrace.Wrap(malformed(err))
	}
	c.Value = uint32(n)
	return true, nil
}

func (c *CSeq) IsValid() bool { return true }
