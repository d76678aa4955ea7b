package message

import "github.com/greywire/rtsp/internal/errorutil"

// ErrIncomplete is returned by [ParseMessage] when the input buffer does not
// yet contain a complete message; the caller should supply more bytes and
// retry. It is recoverable, unlike [ErrMalformed].
const ErrIncomplete errorutil.Error = "incomplete message"

// ErrMalformed is returned by [ParseMessage] when the input cannot possibly
// be completed into a valid message (bad version token, bad status digits,
// non-integer Content-Length, …). It is fatal for this message; the caller
// decides whether to resync the stream by discarding bytes.
const ErrMalformed errorutil.Error = "malformed message"

func newIncompleteErr(args ...any) error {
	return errorutil.NewWrapperError(ErrIncomplete, args...) //errtrace:skip
}

func newMalformedErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformed, args...) //errtrace:skip
}
