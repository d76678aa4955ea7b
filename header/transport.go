package header

import (
	"strconv"
	"strings"

	"github.com/greywire/rtsp/internal/grammar"
	"github.com/greywire/rtsp/message"
)

// Known RTP profile and lower-transport tokens; anything else is an
// extension, preserved verbatim in the corresponding string field.
const (
	ProfileAVP   = "AVP"
	ProfileAVPF  = "AVPF"
	ProfileSAVP  = "SAVP"
	ProfileSAVPF = "SAVPF"

	LowerTCP = "TCP"
	LowerUDP = "UDP"

	ModePlay   = "PLAY"
	ModeRecord = "RECORD"
)

// PortRange is a `<lo>[-<hi>]` value, used by port, client_port, server_port
// and interleaved.
type PortRange struct {
	Low     uint16
	High    uint16
	HasHigh bool
}

func (p PortRange) String() string {
	if !p.HasHigh {
		return strconv.FormatUint(uint64(p.Low), 10)
	}
	return strconv.FormatUint(uint64(p.Low), 10) + "-" + strconv.FormatUint(uint64(p.High), 10)
}

func parsePortRange(s string) (PortRange, error) {
	lo, hi, ok := grammar.SplitOnce(s, '-')
	loN, err := strconv.ParseUint(lo, 10, 16)
	if err != nil {
		return PortRange{}, malformed(err)
	}
	if !ok {
		return PortRange{Low: uint16(loN)}, nil
	}
	hiN, err := strconv.ParseUint(hi, 10, 16)
	if err != nil {
		return PortRange{}, malformed(err)
	}
	return PortRange{Low: uint16(loN), High: uint16(hiN), HasHigh: true}, nil
}

// RtpTransport is the structured parse of an `RTP/...` transport spec.
type RtpTransport struct {
	Profile        string
	LowerTransport string
	HasLower       bool

	Unicast   bool
	Multicast bool
	Append    bool
	RTCPMux   bool

	Interleaved *PortRange
	TTL         *uint8
	SSRC        []string
	Mode        []string
	DestAddr    []string
	SrcAddr     []string
	Port        *PortRange
	ClientPort  *PortRange
	ServerPort  *PortRange
	Destination string
	Source      string

	// Others holds parameters outside the recognised key set, keyed by
	// name, value verbatim (unescaped if originally quoted).
	Others map[string]string
}

// TransportSpec is one comma-separated element of the Transport header: a
// protocol stack (e.g. `RTP/AVP/UDP`) plus its parameters. Rtp is non-nil
// exactly when Stack[0] == "RTP".
type TransportSpec struct {
	Stack []string
	Rtp   *RtpTransport
}

func (t TransportSpec) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Stack, "/"))
	if t.Rtp != nil {
		renderRtpParams(&sb, t.Rtp)
	}
	return sb.String()
}

func renderRtpParams(sb *strings.Builder, r *RtpTransport) {
	write := func(s string) { sb.WriteByte(';'); sb.WriteString(s) }
	if r.Unicast {
		write("unicast")
	}
	if r.Multicast {
		write("multicast")
	}
	if r.Interleaved != nil {
		write("interleaved=" + r.Interleaved.String())
	}
	if r.TTL != nil {
		write("ttl=" + strconv.FormatUint(uint64(*r.TTL), 10))
	}
	if len(r.SSRC) > 0 {
		write("ssrc=" + strings.Join(r.SSRC, "/"))
	}
	if len(r.Mode) > 0 {
		write(`mode="` + strings.Join(r.Mode, ", ") + `"`)
	}
	if len(r.DestAddr) > 0 {
		write("dest_addr=" + renderAddrList(r.DestAddr))
	}
	if len(r.SrcAddr) > 0 {
		write("src_addr=" + renderAddrList(r.SrcAddr))
	}
	if r.Port != nil {
		write("port=" + r.Port.String())
	}
	if r.ClientPort != nil {
		write("client_port=" + r.ClientPort.String())
	}
	if r.ServerPort != nil {
		write("server_port=" + r.ServerPort.String())
	}
	if r.Destination != "" {
		write("destination=" + r.Destination)
	}
	if r.Source != "" {
		write("source=" + r.Source)
	}
	if r.Append {
		write("append")
	}
	if r.RTCPMux {
		write("RTCP-mux")
	}
	for _, k := range sortedKeys(r.Others) {
		v := r.Others[k]
		if grammar.IsToken(v) {
			write(k + "=" + v)
		} else {
			write(k + "=" + grammar.QuoteString(v))
		}
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

func renderAddrList(addrs []string) string {
	toks := make([]string, len(addrs))
	for i, a := range addrs {
		toks[i] = grammar.QuoteString(a)
	}
	return strings.Join(toks, "/")
}

type transportRawParam struct {
	name     string
	value    string
	addrs    []string
	hasValue bool
}

func valueTokenChar(b byte) bool { return grammar.IsTokenByte(b) || grammar.IsRtspUnreservedByte(b) }

func scanValueToken(s string) (tok, rest string) {
	i := 0
	for i < len(s) && valueTokenChar(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// scanTransportParams parses a `*( ";" param )` tail, special-casing
// dest_addr/src_addr to use [grammar.ScanAddressList] instead of the plain
// quoted-string scanner (see §4.4.1's address-list rule).
func scanTransportParams(s string) ([]transportRawParam, error) {
	s = grammar.TrimSP(s)
	var out []transportRawParam
	for len(s) > 0 {
		s = grammar.SkipSP(s)
		if len(s) == 0 {
			break
		}
		if s[0] != ';' {
			return nil, malformed()
		}
		s = grammar.SkipSP(s[1:])

		name, rest := grammar.ScanToken(s)
		if name == "" {
			return nil, malformed()
		}

		probe := grammar.SkipSP(rest)
		if len(probe) == 0 || probe[0] != '=' {
			out = append(out, transportRawParam{name: name})
			s = rest
			continue
		}
		probe = grammar.SkipSP(probe[1:])

		switch name {
		case "dest_addr", "src_addr":
			addrs, rest2, err := grammar.ScanAddressList(probe)
			if err != nil {
				return nil, malformed(err)
			}
			out = append(out, transportRawParam{name: name, addrs: addrs, hasValue: true})
			s = rest2
		default:
			if len(probe) > 0 && probe[0] == '"' {
				val, rest2, err := grammar.ScanQuotedString(probe)
				if err != nil {
					return nil, malformed(err)
				}
				out = append(out, transportRawParam{name: name, value: val, hasValue: true})
				s = rest2
				continue
			}
			val, rest2 := scanValueToken(probe)
			if val == "" {
				return nil, malformed()
			}
			out = append(out, transportRawParam{name: name, value: val, hasValue: true})
			s = rest2
		}
	}
	return out, nil
}

func parseTransportSpec(s string) (TransportSpec, error) {
	var stack []string
	rest := s
	for {
		var tok string
		tok, rest = grammar.ScanToken(rest)
		if tok == "" {
			return TransportSpec{}, malformed()
		}
		stack = append(stack, tok)
		if len(rest) == 0 || rest[0] != '/' {
			break
		}
		rest = rest[1:]
	}

	params, err := scanTransportParams(rest)
	if err != nil {
		return TransportSpec{}, malformed(err)
	}

	spec := TransportSpec{Stack: stack}
	if stack[0] == "RTP" {
		rtp, err := buildRtpTransport(stack, params)
		if err != nil {
			return TransportSpec{}, malformed(err)
		}
		spec.Rtp = rtp
	}
	return spec, nil
}

func buildRtpTransport(stack []string, params []transportRawParam) (*RtpTransport, error) {
	r := &RtpTransport{Others: map[string]string{}}
	if len(stack) > 1 {
		r.Profile = stack[1]
	}
	if len(stack) > 2 {
		r.LowerTransport = stack[2]
		r.HasLower = true
	}

	for _, p := range params {
		switch p.name {
		case "unicast":
			r.Unicast = true
		case "multicast":
			r.Multicast = true
		case "append":
			r.Append = true
		case "RTCP-mux":
			r.RTCPMux = true
		case "interleaved":
			pr, err := parsePortRange(p.value)
			if err != nil {
				return nil, err
			}
			r.Interleaved = &pr
		case "ttl":
			n, err := strconv.ParseUint(p.value, 10, 8)
			if err != nil {
				return nil, malformed(err)
			}
			ttl := uint8(n)
			r.TTL = &ttl
		case "ssrc":
			r.SSRC = strings.Split(p.value, "/")
		case "mode":
			var modes []string
			for _, m := range strings.Split(p.value, ",") {
				modes = append(modes, grammar.TrimSP(m))
			}
			r.Mode = modes
		case "dest_addr":
			r.DestAddr = p.addrs
		case "src_addr":
			r.SrcAddr = p.addrs
		case "port":
			pr, err := parsePortRange(p.value)
			if err != nil {
				return nil, err
			}
			r.Port = &pr
		case "client_port":
			pr, err := parsePortRange(p.value)
			if err != nil {
				return nil, err
			}
			r.ClientPort = &pr
		case "server_port":
			pr, err := parsePortRange(p.value)
			if err != nil {
				return nil, err
			}
			r.ServerPort = &pr
		case "destination":
			r.Destination = p.value
		case "source":
			r.Source = p.value
		default:
			r.Others[p.name] = p.value
		}
	}
	return r, nil
}

// Transport is the Transport header: a comma-separated, preference-ordered
// list of acceptable transport specs.
type Transport struct {
	Specs []TransportSpec
}

func (*Transport) CanonicName() message.HeaderName { return "Transport" }

func (t *Transport) RenderValue() string {
	toks := make([]string, len(t.Specs))
	for i, s := range t.Specs {
		toks[i] = s.String()
	}
	return strings.Join(toks, ", ")
}

func (t *Transport) InsertInto(hm *message.HeaderMap) {
	hm.Insert(t.CanonicName(), message.HeaderValue(t.RenderValue()))
}

func (t *Transport) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(t.CanonicName())
	if !ok {
		return false, nil
	}
	var specs []TransportSpec
	for _, part := range grammar.SplitTopLevel(string(v), ',') {
		spec, err := parseTransportSpec(grammar.TrimSP(part))
		if err != nil {
			return false, malformed(err)
		}
		specs = append(specs, spec)
	}
	t.Specs = specs
	return true, nil
}

func (t *Transport) IsValid() bool { return len(t.Specs) > 0 }
