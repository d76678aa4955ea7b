package header

import (
	"strings"

	"github.com/greywire/rtsp/internal/grammar"
)

// MediaRange is a single `type "/" subtype *( ";" param )` element, shared by
// Accept (a list of these) and Content-Type (exactly one).
type MediaRange struct {
	Type    string // "*" is a valid wildcard
	Subtype string // "*" is a valid wildcard
	Params  []grammar.Param
}

func (m MediaRange) String() string {
	var sb strings.Builder
	sb.WriteString(m.Type)
	sb.WriteByte('/')
	sb.WriteString(m.Subtype)
	for _, p := range m.Params {
		sb.WriteByte(';')
		sb.WriteString(p.Name)
		if p.HasValue {
			sb.WriteByte('=')
			if p.Quoted {
				sb.WriteString(grammar.QuoteString(p.Value))
			} else {
				sb.WriteString(p.Value)
			}
		}
	}
	return sb.String()
}

// Param returns the value of the named parameter and whether it was present.
func (m MediaRange) Param(name string) (string, bool) {
	p, ok := grammar.FindParam(m.Params, name)
	return p.Value, ok
}

func scanTypeToken(s string) (tok, rest string, err error) {
	if len(s) > 0 && s[0] == '*' {
		return "*", s[1:], nil
	}
	tok, rest = grammar.ScanToken(s)
	if tok == "" {
		return "", s, malformed()
	}
	return tok, rest, nil
}

func parseMediaRange(s string) (MediaRange, error) {
	typ, rest, err := scanTypeToken(s)
	if err != nil {
		return MediaRange{}, malformed(err)
	}
	if len(rest) == 0 || rest[0] != '/' {
		return MediaRange{}, malformed()
	}
	subtype, rest, err := scanTypeToken(rest[1:])
	if err != nil {
		return MediaRange{}, malformed(err)
	}
	params, err := grammar.ParseParams(rest)
	if err != nil {
		return MediaRange{}, malformed(err)
	}
	return MediaRange{Type: typ, Subtype: subtype, Params: params}, nil
}
