package message

import "github.com/greywire/rtsp/internal/grammar"

// Method is an RTSP request method. Known methods use their canonical
// uppercased spelling; any other token is an extension method, preserved
// verbatim.
type Method string

const (
	Describe      Method = "DESCRIBE"
	GetParameter  Method = "GET_PARAMETER"
	Options       Method = "OPTIONS"
	Pause         Method = "PAUSE"
	Play          Method = "PLAY"
	PlayNotify    Method = "PLAY_NOTIFY"
	Redirect      Method = "REDIRECT"
	Setup         Method = "SETUP"
	SetParameter  Method = "SET_PARAMETER"
	Announce      Method = "ANNOUNCE"
	Record        Method = "RECORD"
	Teardown      Method = "TEARDOWN"
)

// knownMethods enumerates the closed set recognised by IsExtension.
var knownMethods = map[Method]struct{}{
	Describe: {}, GetParameter: {}, Options: {}, Pause: {}, Play: {},
	PlayNotify: {}, Redirect: {}, Setup: {}, SetParameter: {}, Announce: {},
	Record: {}, Teardown: {},
}

// IsExtension reports whether m is outside the closed set of known methods.
func (m Method) IsExtension() bool {
	_, known := knownMethods[m]
	return !known
}

// IsValid reports whether m is a syntactically valid RTSP method token.
func (m Method) IsValid() bool { return grammar.IsToken(string(m)) }

// IsIdempotent reports whether repeating the method has no additional effect
// beyond the first application. Carried from the original's method table as
// pure data; no retry policy is implemented here (out of scope).
func (m Method) IsIdempotent() bool {
	switch m {
	case Describe, GetParameter, Options, Pause, Play, Setup, Teardown, Redirect:
		return true
	default:
		return false
	}
}

// String returns the method token.
func (m Method) String() string { return string(m) }
