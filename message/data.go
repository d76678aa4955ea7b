package message

import (
	"encoding/binary"
	"io"

	"braces.dev/errtrace"

	"github.com/greywire/rtsp/internal/ioutil"
	"github.com/greywire/rtsp/internal/util"
)

// Data is an interleaved binary data frame: a '$' marker, a one-byte channel
// id, and a length-prefixed body, multiplexed onto the same byte stream as
// RTSP requests and responses.
type Data[B Body] struct {
	ChannelID uint8
	Body      B
}

func (*Data[B]) messageKind() Kind { return KindData }

// NewData constructs a Data frame for the given channel and body.
func NewData[B Body](channelID uint8, body B) *Data[B] {
	return &Data[B]{ChannelID: channelID, Body: body}
}

// RenderTo writes the 4-byte frame header ('$', channel, big-endian u16
// length) followed by the body.
func (d *Data[B]) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if d == nil {
		return 0, nil
	}

	body := d.Body.Bytes()
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	var hdr [4]byte
	hdr[0] = '$'
	hdr[1] = d.ChannelID
	binary.BigEndian.PutUint16(hdr[2:], uint16(len(body)))
	cw.Write(hdr[:])
	cw.Write(body)

	return errtrace.Wrap2(cw.Result())
}

// Render returns the frame's wire form as a string (which, unlike a Request
// or Response, is not printable text but the raw 4-byte header plus body).
func (d *Data[B]) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	_, _ = d.RenderTo(sb, opts)
	return sb.String()
}

// WriteLen returns the exact byte count [Data.RenderTo] would produce.
func (d *Data[B]) WriteLen(opts *RenderOptions) int {
	if d == nil {
		return 0
	}
	return 4 + len(d.Body.Bytes())
}

// Clone returns a copy of d. The body is copied through cloneBody when it is
// non-nil; with a nil cloneBody the copy shares d's body.
func (d *Data[B]) Clone(cloneBody func(B) B) *Data[B] {
	if d == nil {
		return nil
	}
	out := &Data[B]{ChannelID: d.ChannelID}
	if cloneBody != nil {
		out.Body = cloneBody(d.Body)
	} else {
		out.Body = d.Body
	}
	return out
}

// Equal compares channel id and body.
func (d *Data[B]) Equal(other *Data[B]) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return d.ChannelID == other.ChannelID && bytesEqual(d.Body.Bytes(), other.Body.Bytes())
}
