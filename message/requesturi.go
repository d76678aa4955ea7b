package message

import "github.com/greywire/rtsp/internal/grammar"

// RequestURI is the request-line target: a single run of VCHAR
// (0x21-0x7E), or the literal "*" meaning "no specific resource". A nil
// *RequestURI on a [Request] represents the "*" form (see §3's invariant).
type RequestURI string

// IsValid reports whether u is a non-empty run of VCHAR bytes.
func (u RequestURI) IsValid() bool {
	if len(u) == 0 {
		return false
	}
	for i := 0; i < len(u); i++ {
		if !grammar.IsVChar(u[i]) {
			return false
		}
	}
	return true
}

func (u RequestURI) String() string { return string(u) }
