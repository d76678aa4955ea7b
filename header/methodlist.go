package header

import (
	"strings"

	"github.com/greywire/rtsp/internal/grammar"
	"github.com/greywire/rtsp/message"
)

func renderMethodList(methods []message.Method) string {
	toks := make([]string, len(methods))
	for i, m := range methods {
		toks[i] = m.String()
	}
	return strings.Join(toks, ", ")
}

func parseMethodList(v string) ([]message.Method, error) {
	parts := grammar.SplitTopLevel(v, ',')
	methods := make([]message.Method, 0, len(parts))
	for _, p := range parts {
		tok := grammar.TrimSP(p)
		if !grammar.IsToken(tok) {
			return nil, malformed()
		}
		methods = append(methods, message.Method(tok))
	}
	return methods, nil
}

// Allow is the Allow header: the methods the resource supports.
type Allow struct {
	Methods []message.Method
}

func (*Allow) CanonicName() message.HeaderName { return "Allow" }

func (a *Allow) RenderValue() string { return renderMethodList(a.Methods) }

func (a *Allow) InsertInto(hm *message.HeaderMap) {
	hm.Insert(a.CanonicName(), message.HeaderValue(a.RenderValue()))
}

func (a *Allow) AppendTo(hm *message.HeaderMap) {
	hm.Append(a.CanonicName(), message.HeaderValue(a.RenderValue()))
}

func (a *Allow) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(a.CanonicName())
	if !ok {
		return false, nil
	}
	methods, err := parseMethodList(string(v))
	if err != nil {
		return false, malformed(err)
	}
	a.Methods = methods
	return true, nil
}

func (a *Allow) IsValid() bool { return true }

// Public is the Public header: the methods the server supports overall, not
// scoped to one resource.
type Public struct {
	Methods []message.Method
}

func (*Public) CanonicName() message.HeaderName { return "Public" }

func (p *Public) RenderValue() string { return renderMethodList(p.Methods) }

func (p *Public) InsertInto(hm *message.HeaderMap) {
	hm.Insert(p.CanonicName(), message.HeaderValue(p.RenderValue()))
}

func (p *Public) AppendTo(hm *message.HeaderMap) {
	hm.Append(p.CanonicName(), message.HeaderValue(p.RenderValue()))
}

func (p *Public) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(p.CanonicName())
	if !ok {
		return false, nil
	}
	methods, err := parseMethodList(string(v))
	if err != nil {
		return false, malformed(err)
	}
	p.Methods = methods
	return true, nil
}

func (p *Public) IsValid() bool { return true }
