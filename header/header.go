// Package header implements the RFC 7826 typed header codec: one type per
// header, each providing FromHeaders/InsertInto projections to and from a
// [message.HeaderMap]'s raw string values, plus AppendTo on the headers that
// accumulate comma-separated values.
package header

//go:generate errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/greywire/rtsp/internal/errorutil"
	"github.com/greywire/rtsp/message"
)

// ErrMalformed is the single opaque "value malformed" signal every header's
// FromHeaders returns when the raw value fails its grammar. Absence of the
// header is reported as (false, nil), never as an error.
const ErrMalformed errorutil.Error = "malformed header value"

func malformed(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformed, args...) //errtrace:skip
}

// Header is satisfied by every typed header's pointer type. It projects a
// parsed value back into raw name/value form.
type Header interface {
	CanonicName() message.HeaderName
	RenderValue() string
	InsertInto(hm *message.HeaderMap)
}

// AppendableHeader is satisfied by headers that support comma-accumulated
// multi-valued insertion (RFC 7826 §5.2).
type AppendableHeader interface {
	Header
	AppendTo(hm *message.HeaderMap)
}

// fromHeaderser is the constructor-side contract: *H populates itself from a
// header map and reports whether the header was present.
type fromHeaderser[H any] interface {
	*H
	FromHeaders(hm *message.HeaderMap) (bool, error)
}

// GetTyped looks up and parses header H from hm. It returns (nil, nil) when
// H is absent, (nil, err) when present but malformed, and the parsed value
// otherwise.
func GetTyped[H any, PH fromHeaderser[H]](hm *message.HeaderMap) (*H, error) {
	var v H
	ok, err := PH(&v).FromHeaders(hm)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// SetTyped replace-inserts h's canonical rendering into hm.
func SetTyped[H Header](hm *message.HeaderMap, h H) { h.InsertInto(hm) }

// AppendTyped appends h's canonical rendering onto hm with ", ".
func AppendTyped[H AppendableHeader](hm *message.HeaderMap, h H) { h.AppendTo(hm) }
