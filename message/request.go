package message

import (
	"io"

	"braces.dev/errtrace"

	"github.com/greywire/rtsp/internal/ioutil"
	"github.com/greywire/rtsp/internal/util"
)

// Request is an RTSP request message, generic over its body container B.
//
// RequestURI is nil exactly when the request line carried the literal "*"
// (see §3's invariant); Method and Version are always present.
type Request[B Body] struct {
	Method     Method
	RequestURI *RequestURI
	Version    Version
	Headers    *HeaderMap
	Body       B

	// Extensions holds caller-attached metadata that survives Clone but
	// never serializes and never participates in Equal. Carried from the
	// original implementation's side-channel Extensions bag.
	Extensions map[string]any
}

func (*Request[B]) messageKind() Kind { return KindRequest }

// SetBody replaces the body and maintains Content-Length per §4.3 (the same
// adjustment builders perform on Build).
func (r *Request[B]) SetBody(body B) {
	r.Body = body
	if r.Headers == nil {
		r.Headers = NewHeaderMap()
	}
	maintainContentLength(r.Headers, len(body.Bytes()))
}

// RenderTo writes the request's wire form to w: the request line, each
// header in deterministic order, a blank line, then the body verbatim.
func (r *Request[B]) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if r == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	target := "*"
	if r.RequestURI != nil {
		target = r.RequestURI.String()
	}
	cw.Fprintf("%s %s %s\r\n", r.Method, target, r.Version)

	if r.Headers != nil {
		r.Headers.Entries(func(name HeaderName, value HeaderValue) {
			cw.Fprintf("%s: %s\r\n", name, value)
		})
	}
	cw.WriteString("\r\n")
	cw.Write(r.Body.Bytes())

	return errtrace.Wrap2(cw.Result())
}

// Render returns the request's wire form as a string, satisfying
// [github.com/greywire/rtsp/internal/types.Renderer].
func (r *Request[B]) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	_, _ = r.RenderTo(sb, opts)
	return sb.String()
}

// WriteLen returns the exact byte count [Request.RenderTo] would produce,
// without writing anything.
func (r *Request[B]) WriteLen(opts *RenderOptions) int {
	if r == nil {
		return 0
	}

	target := "*"
	if r.RequestURI != nil {
		target = r.RequestURI.String()
	}
	n := len(r.Method) + 1 + len(target) + 1 + len(r.Version.String()) + 2

	if r.Headers != nil {
		r.Headers.Entries(func(name HeaderName, value HeaderValue) {
			n += len(name) + 2 + len(value) + 2
		})
	}
	n += 2
	n += len(r.Body.Bytes())
	return n
}

// Clone returns a copy of r with its own request URI, header map and
// Extensions map. The body is copied through cloneBody when it is non-nil;
// with a nil cloneBody the copy shares r's body.
func (r *Request[B]) Clone(cloneBody func(B) B) *Request[B] {
	if r == nil {
		return nil
	}
	out := &Request[B]{
		Method:  r.Method,
		Version: r.Version,
	}
	if r.RequestURI != nil {
		u := *r.RequestURI
		out.RequestURI = &u
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

// Equal compares method, request URI, version, headers and body. Extensions
// are deliberately excluded.
func (r *Request[B]) Equal(other *Request[B]) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	if r.Method != other.Method || r.Version != other.Version {
		return false
	}
	switch {
	case r.RequestURI == nil && other.RequestURI == nil:
	case r.RequestURI == nil || other.RequestURI == nil:
		return false
	case *r.RequestURI != *other.RequestURI:
		return false
	}
	if !r.Headers.Equal(other.Headers) {
		return false
	}
	return bytesEqual(r.Body.Bytes(), other.Body.Bytes())
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
