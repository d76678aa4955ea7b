package message

// ToOwnedRequest converts a borrowed request (body type [Bytes], aliasing the
// parser's input buffer) into an owned request whose body is held in any
// other container B, via ctor. Header names/values are copied by value
// (Go strings are themselves immutable once sliced, so no further copying of
// their bytes is required to outlive the input buffer).
func ToOwnedRequest[B Body](r *Request[Bytes], ctor func([]byte) B) *Request[B] {
	if r == nil {
		return nil
	}
	out := &Request[B]{
		Method:  r.Method,
		Version: r.Version,
		Body:    ctor(r.Body.Bytes()),
	}
	if r.RequestURI != nil {
		u := *r.RequestURI
		out.RequestURI = &u
	}
	if r.Headers != nil {
		out.Headers = r.Headers.Clone()
	}
	return out
}

// ToOwnedResponse converts a borrowed response into an owned one, see
// [ToOwnedRequest].
func ToOwnedResponse[B Body](r *Response[Bytes], ctor func([]byte) B) *Response[B] {
	if r == nil {
		return nil
	}
	out := &Response[B]{
		Version:      r.Version,
		Status:       r.Status,
		ReasonPhrase: r.ReasonPhrase,
		Body:         ctor(r.Body.Bytes()),
	}
	if r.Headers != nil {
		out.Headers = r.Headers.Clone()
	}
	return out
}

// ToOwnedData converts a borrowed interleaved-data frame into an owned one,
// see [ToOwnedRequest].
func ToOwnedData[B Body](d *Data[Bytes], ctor func([]byte) B) *Data[B] {
	if d == nil {
		return nil
	}
	return &Data[B]{ChannelID: d.ChannelID, Body: ctor(d.Body.Bytes())}
}
