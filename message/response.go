package message

import (
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/greywire/rtsp/internal/ioutil"
	"github.com/greywire/rtsp/internal/util"
)

// Response is an RTSP response message, generic over its body container B.
// ReasonPhrase is always present; builders default it to the status code's
// display text (see §4.3).
type Response[B Body] struct {
	Version      Version
	Status       StatusCode
	ReasonPhrase string
	Headers      *HeaderMap
	Body         B

	// Extensions holds caller-attached metadata; see [Request.Extensions].
	Extensions map[string]any
}

func (*Response[B]) messageKind() Kind { return KindResponse }

// SetBody replaces the body and maintains Content-Length; see
// [Request.SetBody].
func (r *Response[B]) SetBody(body B) {
	r.Body = body
	if r.Headers == nil {
		r.Headers = NewHeaderMap()
	}
	maintainContentLength(r.Headers, len(body.Bytes()))
}

// RenderTo writes the response's wire form to w: the status line, each
// header in deterministic order, a blank line, then the body verbatim.
func (r *Response[B]) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if r == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	reason := r.ReasonPhrase
	if reason == "" {
		reason = r.Status.Reason()
	}
	cw.Fprintf("%s %d %s\r\n", r.Version, uint16(r.Status), reason)

	if r.Headers != nil {
		r.Headers.Entries(func(name HeaderName, value HeaderValue) {
			cw.Fprintf("%s: %s\r\n", name, value)
		})
	}
	cw.WriteString("\r\n")
	cw.Write(r.Body.Bytes())

	return errtrace.Wrap2(cw.Result())
}

// Render returns the response's wire form as a string, satisfying
// [github.com/greywire/rtsp/internal/types.Renderer].
func (r *Response[B]) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	_, _ = r.RenderTo(sb, opts)
	return sb.String()
}

// WriteLen returns the exact byte count [Response.RenderTo] would produce.
func (r *Response[B]) WriteLen(opts *RenderOptions) int {
	if r == nil {
		return 0
	}

	reason := r.ReasonPhrase
	if reason == "" {
		reason = r.Status.Reason()
	}
	n := len(r.Version.String()) + 1 + len(strconv.FormatUint(uint64(r.Status), 10)) + 1 + len(reason) + 2

	if r.Headers != nil {
		r.Headers.Entries(func(name HeaderName, value HeaderValue) {
			n += len(name) + 2 + len(value) + 2
		})
	}
	n += 2
	n += len(r.Body.Bytes())
	return n
}

// Clone returns a copy of r with its own header map and Extensions map. The
// body is copied through cloneBody when it is non-nil; with a nil cloneBody
// the copy shares r's body.
func (r *Response[B]) Clone(cloneBody func(B) B) *Response[B] {
	if r == nil {
		return nil
	}
	out := &Response[B]{
		Version:      r.Version,
		Status:       r.Status,
		ReasonPhrase: r.ReasonPhrase,
	}
	if r.Headers != nil {
		out.Headers = r.Headers.Clone()
	}
	if cloneBody != nil {
		out.Body = cloneBody(r.Body)
	} else {
		out.Body = r.Body
	}
	if r.Extensions != nil {
		out.Extensions = make(map[string]any, len(r.Extensions))
		for k, v := range r.Extensions {
			out.Extensions[k] = v
		}
	}
	return out
}

// Equal compares version, status, reason phrase, headers and body.
// Extensions are deliberately excluded.
func (r *Response[B]) Equal(other *Response[B]) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	if r.Version != other.Version || r.Status != other.Status || r.ReasonPhrase != other.ReasonPhrase {
		return false
	}
	if !r.Headers.Equal(other.Headers) {
		return false
	}
	return bytesEqual(r.Body.Bytes(), other.Body.Bytes())
}
