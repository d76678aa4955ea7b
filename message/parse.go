package message

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/greywire/rtsp/internal/grammar"
)

const crlf = "\r\n"

// ParseMessage decodes one complete message (request, response, or
// interleaved data frame) from the front of data. It returns the decoded
// message and the number of bytes consumed, [ErrIncomplete] if data does not
// yet hold a complete message, or [ErrMalformed] if data can never be
// completed into a valid message. ParseMessage never panics on arbitrary
// input and is purely functional: the same data always yields the same
// result.
func ParseMessage(data []byte) (Message[Bytes], int, error) {
	skipped := skipLeadingCRLFPairs(data)
	rest := data[skipped:]

	if len(rest) == 0 {
		return nil, 0, errtrace.Wrap(newIncompleteErr("empty input"))
	}

	if rest[0] == '$' {
		msg, n, err := parseDataFrame(rest)
		if err != nil {
			return nil, 0, errtrace.Wrap(err)
		}
		return msg, skipped + n, nil
	}

	msg, n, err := parseTextMessage(rest)
	if err != nil {
		return nil, 0, errtrace.Wrap(err)
	}
	return msg, skipped + n, nil
}

func skipLeadingCRLFPairs(data []byte) int {
	i := 0
	for i+1 < len(data) && data[i] == '\r' && data[i+1] == '\n' {
		i += 2
	}
	return i
}

func parseDataFrame(data []byte) (*Data[Bytes], int, error) {
	if len(data) < 4 {
		return nil, 0, errtrace.Wrap(newIncompleteErr("data frame header"))
	}
	channel := data[1]
	length := int(binary.BigEndian.Uint16(data[2:4]))
	total := 4 + length
	if len(data) < total {
		return nil, 0, errtrace.Wrap(newIncompleteErr("data frame body"))
	}
	return &Data[Bytes]{ChannelID: channel, Body: Bytes(data[4:total])}, total, nil
}

func parseTextMessage(data []byte) (Message[Bytes], int, error) {
	lineEnd := bytes.Index(data, []byte(crlf))
	if lineEnd < 0 {
		return nil, 0, errtrace.Wrap(newIncompleteErr("start line"))
	}
	line := data[:lineEnd]
	afterLine := lineEnd + 2

	if bytes.HasPrefix(line, []byte("RTSP/")) {
		version, status, reason, err := parseStatusLine(line)
		if err != nil {
			return nil, 0, errtrace.Wrap(err)
		}
		hm, body, n, err := parseHeadersAndBody(data[afterLine:])
		if err != nil {
			return nil, 0, errtrace.Wrap(err)
		}
		resp := &Response[Bytes]{
			Version:      version,
			Status:       status,
			ReasonPhrase: reason,
			Headers:      hm,
			Body:         body,
		}
		return resp, afterLine + n, nil
	}

	method, uri, version, err := parseRequestLine(line)
	if err != nil {
		return nil, 0, errtrace.Wrap(err)
	}
	hm, body, n, err := parseHeadersAndBody(data[afterLine:])
	if err != nil {
		return nil, 0, errtrace.Wrap(err)
	}
	req := &Request[Bytes]{
		Method:     method,
		RequestURI: uri,
		Version:    version,
		Headers:    hm,
		Body:       body,
	}
	return req, afterLine + n, nil
}

func parseRequestLine(line []byte) (Method, *RequestURI, Version, error) {
	sp1 := bytes.IndexByte(line, ' ')
	if sp1 < 0 {
		return "", nil, 0, errtrace.Wrap(newMalformedErr("bad request line"))
	}
	methodBytes := line[:sp1]
	rest := line[sp1+1:]

	sp2 := bytes.IndexByte(rest, ' ')
	if sp2 < 0 {
		return "", nil, 0, errtrace.Wrap(newMalformedErr("bad request line"))
	}
	targetBytes := rest[:sp2]
	verBytes := rest[sp2+1:]
	if bytes.IndexByte(verBytes, ' ') >= 0 {
		return "", nil, 0, errtrace.Wrap(newMalformedErr("bad request line"))
	}

	if !grammar.IsToken(methodBytes) {
		return "", nil, 0, errtrace.Wrap(newMalformedErr("bad method token"))
	}
	method := Method(methodBytes)

	version, err := ParseVersion(string(verBytes))
	if err != nil {
		return "", nil, 0, errtrace.Wrap(newMalformedErr(err))
	}

	var uri *RequestURI
	if string(targetBytes) != "*" {
		u := RequestURI(targetBytes)
		if !u.IsValid() {
			return "", nil, 0, errtrace.Wrap(newMalformedErr("bad request-uri"))
		}
		uri = &u
	}

	return method, uri, version, nil
}

func parseStatusLine(line []byte) (Version, StatusCode, string, error) {
	sp1 := bytes.IndexByte(line, ' ')
	if sp1 < 0 {
		return 0, 0, "", errtrace.Wrap(newMalformedErr("bad status line"))
	}
	version, err := ParseVersion(string(line[:sp1]))
	if err != nil {
		return 0, 0, "", errtrace.Wrap(newMalformedErr(err))
	}

	rest := line[sp1+1:]
	sp2 := bytes.IndexByte(rest, ' ')
	var codeBytes, reasonBytes []byte
	if sp2 < 0 {
		codeBytes = rest
	} else {
		codeBytes = rest[:sp2]
		reasonBytes = rest[sp2+1:]
	}

	if len(codeBytes) != 3 {
		return 0, 0, "", errtrace.Wrap(newMalformedErr("bad status code"))
	}
	for _, b := range codeBytes {
		if b < '0' || b > '9' {
			return 0, 0, "", errtrace.Wrap(newMalformedErr("bad status code"))
		}
	}
	code, _ := strconv.Atoi(string(codeBytes))

	return version, StatusCode(code), string(reasonBytes), nil
}

// parseHeadersAndBody parses the header section starting at data[0] (right
// after the start line's CRLF) through the blank-line terminator, then reads
// exactly Content-Length bytes of body. It returns the bytes consumed
// relative to data[0].
func parseHeadersAndBody(data []byte) (*HeaderMap, Bytes, int, error) {
	hm, hdrEnd, err := parseHeaderSection(data)
	if err != nil {
		return nil, nil, 0, errtrace.Wrap(err)
	}

	bodyLen := 0
	if cl, ok := hm.Get(HeaderName("Content-Length")); ok {
		n, perr := strconv.ParseUint(strings.TrimSpace(string(cl)), 10, 63)
		if perr != nil {
			return nil, nil, 0, errtrace.Wrap(newMalformedErr("bad content-length"))
		}
		bodyLen = int(n)
	}

	if len(data)-hdrEnd < bodyLen {
		return nil, nil, 0, errtrace.Wrap(newIncompleteErr("body"))
	}

	body := Bytes(data[hdrEnd : hdrEnd+bodyLen])
	return hm, body, hdrEnd + bodyLen, nil
}

func isLWS(b byte) bool { return b == ' ' || b == '\t' }

// parseHeaderSection scans `*( name ":" [LWS] value CRLF ) CRLF`, collapsing
// multi-line continuations into a single embedded space, and returns the
// header map plus the number of bytes consumed (including the terminating
// blank-line CRLF).
func parseHeaderSection(data []byte) (*HeaderMap, int, error) {
	hm := NewHeaderMap()
	pos := 0

	for {
		if pos+1 < len(data) && data[pos] == '\r' && data[pos+1] == '\n' {
			pos += 2
			return hm, pos, nil
		}
		if pos >= len(data) {
			return nil, 0, errtrace.Wrap(newIncompleteErr("header section"))
		}
		if data[pos] == '\r' {
			// Exactly one byte available; ambiguous whether this is the
			// blank-line terminator.
			return nil, 0, errtrace.Wrap(newIncompleteErr("header section"))
		}

		colon := bytes.IndexByte(data[pos:], ':')
		if colon < 0 {
			return nil, 0, errtrace.Wrap(newIncompleteErr("header name"))
		}
		nameBytes := data[pos : pos+colon]
		if !grammar.IsToken(nameBytes) {
			return nil, 0, errtrace.Wrap(newMalformedErr("bad header name"))
		}
		name := HeaderName(string(nameBytes))
		pos += colon + 1

		for pos < len(data) && isLWS(data[pos]) {
			pos++
		}
		if pos >= len(data) {
			return nil, 0, errtrace.Wrap(newIncompleteErr("header value"))
		}

		var valueBuf strings.Builder
		segStart := pos
		for {
			idx := bytes.Index(data[pos:], []byte(crlf))
			if idx < 0 {
				return nil, 0, errtrace.Wrap(newIncompleteErr("header value"))
			}
			crlfPos := pos + idx
			valueBuf.Write(data[segStart:crlfPos])

			if crlfPos+2 >= len(data) {
				return nil, 0, errtrace.Wrap(newIncompleteErr("header continuation"))
			}
			next := data[crlfPos+2]
			if isLWS(next) {
				valueBuf.WriteByte(' ')
				p := crlfPos + 2
				for p < len(data) && isLWS(data[p]) {
					p++
				}
				if p >= len(data) {
					return nil, 0, errtrace.Wrap(newIncompleteErr("header continuation"))
				}
				segStart = p
				pos = p
				continue
			}

			pos = crlfPos + 2
			break
		}

		value, verr := NewHeaderValue(valueBuf.String())
		if verr != nil {
			return nil, 0, errtrace.Wrap(newMalformedErr(verr))
		}
		hm.Append(name, value)
	}
}
