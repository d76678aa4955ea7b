package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/greywire/rtsp/message"
)

// PipelinedRequests is the Pipelined-Requests header: an identifier shared by
// a batch of requests sent without waiting for intervening responses.
type PipelinedRequests struct {
	Value uint32
}

func (*PipelinedRequests) CanonicName() message.HeaderName { return "Pipelined-Requests" }

func (p *PipelinedRequests) RenderValue() string { return strconv.FormatUint(uint64(p.Value), 10) }

func (p *PipelinedRequests) InsertInto(hm *message.HeaderMap) {
	hm.Insert(p.CanonicName(), message.HeaderValue(p.RenderValue()))
}

func (p *PipelinedRequests) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(p.CanonicName())
	if !ok {
		return false, nil
	}
	n, err := strconv.ParseUint(string(v), 10, 32)
	if err != nil {
		return false, errtrace.Wrap(malformed(err))
	}
	p.Value = uint32(n)
	return true, nil
}

func (p *PipelinedRequests) IsValid() bool { return true }
