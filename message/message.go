package message

// Kind discriminates the three coexisting message shapes on an RTSP byte
// stream: request, response, and interleaved binary data.
type Kind uint8

const (
	KindRequest Kind = iota + 1
	KindResponse
	KindData
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindResponse:
		return "response"
	case KindData:
		return "data"
	default:
		return "unknown"
	}
}

// Message is the closed sum type over [Request], [Response] and [Data],
// generic over the body container B. It is a tagged variant over dynamic
// dispatch: parsing is the only place that branches on shape, and that
// branch is exhaustive over [Kind]. Callers type-switch or use the As*
// helpers below.
type Message[B Body] interface {
	messageKind() Kind
}

// IsRequest reports whether m is a [Request].
func IsRequest[B Body](m Message[B]) bool { return m != nil && m.messageKind() == KindRequest }

// IsResponse reports whether m is a [Response].
func IsResponse[B Body](m Message[B]) bool { return m != nil && m.messageKind() == KindResponse }

// IsData reports whether m is a [Data] frame.
func IsData[B Body](m Message[B]) bool { return m != nil && m.messageKind() == KindData }

// AsRequest returns m as a *Request if it is one.
func AsRequest[B Body](m Message[B]) (*Request[B], bool) {
	r, ok := m.(*Request[B])
	return r, ok
}

// AsResponse returns m as a *Response if it is one.
func AsResponse[B Body](m Message[B]) (*Response[B], bool) {
	r, ok := m.(*Response[B])
	return r, ok
}

// AsData returns m as a *Data if it is one.
func AsData[B Body](m Message[B]) (*Data[B], bool) {
	d, ok := m.(*Data[B])
	return d, ok
}
