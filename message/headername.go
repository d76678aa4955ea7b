package message

import (
	"braces.dev/errtrace"

	"github.com/greywire/rtsp/internal/errorutil"
)

// ErrNonASCII is returned when constructing a HeaderName from a string that
// contains a byte outside the ASCII range.
const ErrNonASCII errorutil.Error = "header name is not ascii"

// HeaderName is an RTSP header field name. Equality, ordering and hashing are
// case-insensitive (ASCII fold on each byte); [HeaderName.String] preserves
// the original case the value was constructed with.
type HeaderName string

// NewHeaderName validates s as pure ASCII and returns it as a HeaderName.
func NewHeaderName(s string) (HeaderName, error) {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return "", errtrace.Wrap(ErrNonASCII)
		}
	}
	return HeaderName(s), nil
}

// String returns the name exactly as constructed.
func (n HeaderName) String() string { return string(n) }

func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// fold returns the ASCII-lowercased form of n, used as the canonical lookup
// key for header maps.
func (n HeaderName) fold() string {
	out := make([]byte, len(n))
	for i := 0; i < len(n); i++ {
		out[i] = foldByte(n[i])
	}
	return string(out)
}

// Equal reports whether n and other are the same header name under
// ASCII case folding.
func (n HeaderName) Equal(other HeaderName) bool { return n.fold() == other.fold() }

// Compare orders n and other by ASCII case-folded byte value, for use in
// deterministic header iteration. It returns -1, 0 or 1.
func (n HeaderName) Compare(other HeaderName) int {
	a, b := n.fold(), other.fold()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
