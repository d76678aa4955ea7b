// Package grammar implements the shared RTSP/RFC 7826 lexical productions
// (token, quoted-string, rtsp-unreserved, param lists, address lists) used by
// both the wire parser and the typed header codecs.
package grammar

//go:generate errtrace -w .

import (
	"strings"

	"braces.dev/errtrace"
)

// Error is returned when a byte sequence fails to match a grammar production.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	// ErrMalformed is returned when a value does not match the expected grammar.
	ErrMalformed Error = "malformed grammar"
	// ErrUnterminated is returned when a quoted-string or param list is truncated.
	ErrUnterminated Error = "unterminated value"
)

// tokenChar reports whether b is a valid RTSP token character:
// ALPHA / DIGIT / "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." / "^" / "_" / "`" / "|" / "~"
func tokenChar(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

// IsTokenByte reports whether b may appear in an RTSP token.
func IsTokenByte(b byte) bool { return tokenChar(b) }

// IsToken reports whether s is a non-empty, fully-valid RTSP token.
func IsToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !tokenChar(s[i]) {
			return false
		}
	}
	return true
}

// unreservedChar reports whether b is rtsp-unreserved:
// ALPHA / DIGIT / "$" / "-" / "_" / "." / "+" / "!" / "*" / "'" / "(" / ")"
func unreservedChar(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '$', '-', '_', '.', '+', '!', '*', '\'', '(', ')':
		return true
	}
	return false
}

// IsRtspUnreservedByte reports whether b is rtsp-unreserved.
func IsRtspUnreservedByte(b byte) bool { return unreservedChar(b) }

// IsRtspUnreserved reports whether s is non-empty and every byte is rtsp-unreserved.
func IsRtspUnreserved[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !unreservedChar(s[i]) {
			return false
		}
	}
	return true
}

// IsVChar reports whether b is a visible ASCII character (0x21-0x7E).
func IsVChar(b byte) bool { return b >= 0x21 && b <= 0x7E }

func isSP(b byte) bool { return b == ' ' || b == '\t' }

// SkipSP returns s with any leading SP/HTAB bytes removed.
func SkipSP(s string) string {
	i := 0
	for i < len(s) && isSP(s[i]) {
		i++
	}
	return s[i:]
}

// TrimSP trims leading and trailing SP/HTAB bytes from s.
func TrimSP(s string) string {
	return strings.Trim(s, " \t")
}

// ScanToken consumes a leading run of token characters from s, returning the
// token and the remainder. The token may be empty.
func ScanToken(s string) (tok, rest string) {
	i := 0
	for i < len(s) && tokenChar(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// SplitOnce splits s at the first occurrence of byte d. ok is false if d does
// not occur in s, in which case before is s and after is empty.
func SplitOnce(s string, d byte) (before, after string, ok bool) {
	i := strings.IndexByte(s, d)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

// ScanQuotedString parses a standard RTSP quoted-string starting at s[0]
// (which must be '"'). It returns the unescaped content and the remainder of
// s immediately after the closing quote.
func ScanQuotedString(s string) (value, rest string, err error) {
	if len(s) == 0 || s[0] != '"' {
		return "", s, errtrace.Wrap(ErrMalformed)
	}
	var sb strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		switch {
		case c == '"':
			return sb.String(), s[i+1:], nil
		case c == '\\':
			if i+1 >= len(s) {
				return "", s, errtrace.Wrap(ErrUnterminated)
			}
			sb.WriteByte(s[i+1])
			i += 2
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return "", s, errtrace.Wrap(ErrUnterminated)
}

// QuoteString renders s as an RTSP quoted-string, escaping '"' and '\'.
func QuoteString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('"')
	return sb.String()
}

// ScanAddressList parses the Transport header's dest_addr/src_addr value: one
// or more quoted-strings joined by a literal "/" separator (itself outside
// the quotes, possibly padded with whitespace). A naive quoted-string scanner
// stops at the first closing quote; this scanner keeps consuming
// `" [SP] "/" [SP] "` as a continuation of the same value.
func ScanAddressList(s string) (addrs []string, rest string, err error) {
	rest = s
	for {
		rest = SkipSP(rest)
		if len(rest) == 0 || rest[0] != '"' {
			if len(addrs) == 0 {
				return nil, s, errtrace.Wrap(ErrMalformed)
			}
			return addrs, rest, nil
		}
		var seg string
		seg, rest, err = ScanQuotedString(rest)
		if err != nil {
			return nil, s, errtrace.Wrap(err)
		}
		addrs = append(addrs, seg)

		probe := SkipSP(rest)
		if len(probe) == 0 || probe[0] != '/' {
			return addrs, rest, nil
		}
		probe = probe[1:]
		probe = SkipSP(probe)
		if len(probe) == 0 || probe[0] != '"' {
			return addrs, rest, nil
		}
		rest = probe
	}
}
