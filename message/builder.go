package message

import "strconv"

const contentLengthName = HeaderName("Content-Length")

// RequestBuilder accumulates a [Request]'s fields before construction.
// Typed headers are inserted by calling their own InsertInto/AppendTo with
// the map returned from [RequestBuilder.Headers].
type RequestBuilder[B Body] struct {
	req *Request[B]
}

// NewRequestBuilder starts building a request for method/version.
func NewRequestBuilder[B Body](method Method, version Version) *RequestBuilder[B] {
	return &RequestBuilder[B]{
		req: &Request[B]{
			Method:  method,
			Version: version,
			Headers: NewHeaderMap(),
		},
	}
}

// RequestURI sets the request target. Not calling this leaves the request
// targeting "*".
func (b *RequestBuilder[B]) RequestURI(u RequestURI) *RequestBuilder[B] {
	b.req.RequestURI = &u
	return b
}

// Header inserts a raw header, replacing any existing value.
func (b *RequestBuilder[B]) Header(name HeaderName, value HeaderValue) *RequestBuilder[B] {
	b.req.Headers.Insert(name, value)
	return b
}

// Headers returns the header map under construction, so typed header codecs
// can insert into it directly via their own InsertInto/AppendTo methods.
func (b *RequestBuilder[B]) Headers() *HeaderMap { return b.req.Headers }

// Empty finalizes the request with an empty body, removing any
// Content-Length header.
func (b *RequestBuilder[B]) Empty() *Request[B] {
	var zero B
	return b.Build(zero)
}

// Build finalizes the request with the given body, maintaining
// Content-Length per §4.3: inserted for a non-empty body, removed for an
// empty one.
func (b *RequestBuilder[B]) Build(body B) *Request[B] {
	b.req.Body = body
	maintainContentLength(b.req.Headers, len(body.Bytes()))
	return b.req
}

// ResponseBuilder accumulates a [Response]'s fields before construction.
type ResponseBuilder[B Body] struct {
	res *Response[B]
}

// NewResponseBuilder starts building a response for version/status. The
// reason phrase defaults to the status code's display text unless
// [ResponseBuilder.ReasonPhrase] overrides it.
func NewResponseBuilder[B Body](version Version, status StatusCode) *ResponseBuilder[B] {
	return &ResponseBuilder[B]{
		res: &Response[B]{
			Version:      version,
			Status:       status,
			ReasonPhrase: status.Reason(),
			Headers:      NewHeaderMap(),
		},
	}
}

// ReasonPhrase overrides the default reason phrase.
func (b *ResponseBuilder[B]) ReasonPhrase(reason string) *ResponseBuilder[B] {
	b.res.ReasonPhrase = reason
	return b
}

// Header inserts a raw header, replacing any existing value.
func (b *ResponseBuilder[B]) Header(name HeaderName, value HeaderValue) *ResponseBuilder[B] {
	b.res.Headers.Insert(name, value)
	return b
}

// Headers returns the header map under construction; see
// [RequestBuilder.Headers].
func (b *ResponseBuilder[B]) Headers() *HeaderMap { return b.res.Headers }

// Empty finalizes the response with an empty body.
func (b *ResponseBuilder[B]) Empty() *Response[B] {
	var zero B
	return b.Build(zero)
}

// Build finalizes the response with the given body, maintaining
// Content-Length per §4.3.
func (b *ResponseBuilder[B]) Build(body B) *Response[B] {
	b.res.Body = body
	maintainContentLength(b.res.Headers, len(body.Bytes()))
	return b.res
}

func maintainContentLength(hm *HeaderMap, bodyLen int) {
	if bodyLen == 0 {
		hm.Remove(contentLengthName)
		return
	}
	hm.Insert(contentLengthName, HeaderValue(strconv.Itoa(bodyLen)))
}
