// Package message implements the RTSP 1.0 (RFC 2326) / RTSP 2.0 (RFC 7826)
// wire grammar: the streaming parser, the byte-exact serializer, and the
// borrowed/owned request, response and interleaved-data models.
package message

//go:generate errtrace -w .

import "github.com/greywire/rtsp/internal/errorutil"

// Version identifies the RTSP protocol version carried on a start line.
type Version uint8

const (
	// V1_0 is RTSP/1.0 (RFC 2326).
	V1_0 Version = iota + 1
	// V2_0 is RTSP/2.0 (RFC 7826).
	V2_0
)

const (
	v1String = "RTSP/1.0"
	v2String = "RTSP/2.0"
)

// ErrBadVersion is returned when a start line does not carry a recognised
// RTSP version token.
const ErrBadVersion errorutil.Error = "bad rtsp version"

// String renders the canonical version token, e.g. "RTSP/1.0".
func (v Version) String() string {
	switch v {
	case V1_0:
		return v1String
	case V2_0:
		return v2String
	default:
		return ""
	}
}

// IsValid reports whether v is one of the known version constants.
func (v Version) IsValid() bool { return v == V1_0 || v == V2_0 }

// ParseVersion parses the exact version token ("RTSP/1.0" or "RTSP/2.0").
func ParseVersion(s string) (Version, error) {
	switch s {
	case v1String:
		return V1_0, nil
	case v2String:
		return V2_0, nil
	default:
		return 0, ErrBadVersion
	}
}
