package message

import (
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/greywire/rtsp/internal/errorutil"
)

// ErrNonUTF8 is returned when constructing a HeaderValue from bytes that are
// not valid UTF-8.
const ErrNonUTF8 errorutil.Error = "header value is not valid utf-8"

// HeaderValue is the raw string content of a header field. It may contain
// embedded whitespace left over from a collapsed multi-line continuation
// (see the wire parser's header-section rule).
type HeaderValue string

// NewHeaderValue validates s as UTF-8 and returns it as a HeaderValue.
func NewHeaderValue(s string) (HeaderValue, error) {
	if !utf8.ValidString(s) {
		return "", errtrace.Wrap(ErrNonUTF8)
	}
	return HeaderValue(s), nil
}

// String returns the raw value.
func (v HeaderValue) String() string { return string(v) }
