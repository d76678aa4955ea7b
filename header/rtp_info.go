package header

import (
	"sort"
	"strconv"
	"strings"

	"github.com/greywire/rtsp/internal/grammar"
	"github.com/greywire/rtsp/message"
)

// RTPInfoItemV1 is one comma-separated element of the v1 RTP-Info form:
// `url=<uri>[;seq=<u16>][;rtptime=<u32>]`.
type RTPInfoItemV1 struct {
	URL     string
	Seq     *uint16
	RTPTime *uint32
}

// RTPInfoItemV2 is one element of the v2 form:
// `url="<uri>" ssrc=<8-hex-digits>[:key=value;...] [ssrc=<8-hex-digits>...]`.
// A single URL may carry more than one space-separated ssrc group (one per
// RTP source multiplexed onto that URL).
type RTPInfoItemV2 struct {
	URL       string
	SSRCInfos []RTPInfoSSRCInfo
}

// RTPInfoSSRCInfo is one `ssrc=<8-hex-digits>[:params]` group within a v2
// RTP-Info item. Params is a semicolon-delimited list; seq and rtptime are
// promoted to typed fields, everything else is preserved in Others.
type RTPInfoSSRCInfo struct {
	SSRC    string
	Seq     *uint16
	RTPTime *uint32
	Others  map[string]string
}

// RTPInfo is the RTP-Info header. Exactly one of V1/V2 is populated,
// selected by whether the raw value begins with `url="` (v2) or `url=`
// followed directly by an unquoted token (v1).
type RTPInfo struct {
	V2      bool
	ItemsV1 []RTPInfoItemV1
	ItemsV2 []RTPInfoItemV2
}

func (*RTPInfo) CanonicName() message.HeaderName { return "RTP-Info" }

func (r *RTPInfo) RenderValue() string {
	var parts []string
	if r.V2 {
		for _, it := range r.ItemsV2 {
			var sb strings.Builder
			sb.WriteString("url=")
			sb.WriteString(grammar.QuoteString(it.URL))
			for _, si := range it.SSRCInfos {
				sb.WriteString(" ssrc=")
				sb.WriteString(si.SSRC)

				var fields []string
				if si.Seq != nil {
					fields = append(fields, "seq="+strconv.FormatUint(uint64(*si.Seq), 10))
				}
				if si.RTPTime != nil {
					fields = append(fields, "rtptime="+strconv.FormatUint(uint64(*si.RTPTime), 10))
				}
				others := make([]string, 0, len(si.Others))
				for k := range si.Others {
					others = append(others, k)
				}
				sort.Strings(others)
				for _, k := range others {
					fields = append(fields, k+"="+si.Others[k])
				}

				if len(fields) > 0 {
					sb.WriteByte(':')
					sb.WriteString(strings.Join(fields, ";"))
				}
			}
			parts = append(parts, sb.String())
		}
	} else {
		for _, it := range r.ItemsV1 {
			var sb strings.Builder
			sb.WriteString("url=")
			sb.WriteString(it.URL)
			if it.Seq != nil {
				sb.WriteString(";seq=")
				sb.WriteString(strconv.FormatUint(uint64(*it.Seq), 10))
			}
			if it.RTPTime != nil {
				sb.WriteString(";rtptime=")
				sb.WriteString(strconv.FormatUint(uint64(*it.RTPTime), 10))
			}
			parts = append(parts, sb.String())
		}
	}
	return strings.Join(parts, ", ")
}

func (r *RTPInfo) InsertInto(hm *message.HeaderMap) {
	hm.Insert(r.CanonicName(), message.HeaderValue(r.RenderValue()))
}

func (r *RTPInfo) AppendTo(hm *message.HeaderMap) {
	hm.Append(r.CanonicName(), message.HeaderValue(r.RenderValue()))
}

func (r *RTPInfo) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(r.CanonicName())
	if !ok {
		return false, nil
	}
	raw := grammar.TrimSP(string(v))
	probe := grammar.SkipSP(raw)
	isV2 := strings.HasPrefix(probe, "url=") && len(probe) > len("url=") && probe[len("url=")] == '"'

	if isV2 {
		items, err := parseRTPInfoV2(raw)
		if err != nil {
			return false, malformed(err)
		}
		r.V2 = true
		r.ItemsV2 = items
		r.ItemsV1 = nil
		return true, nil
	}

	items, err := parseRTPInfoV1(raw)
	if err != nil {
		return false, malformed(err)
	}
	r.V2 = false
	r.ItemsV1 = items
	r.ItemsV2 = nil
	return true, nil
}

func (r *RTPInfo) IsValid() bool { return true }

func parseRTPInfoV1(raw string) ([]RTPInfoItemV1, error) {
	var items []RTPInfoItemV1
	for _, part := range grammar.SplitTopLevel(raw, ',') {
		var item RTPInfoItemV1
		var sawURL bool
		for _, field := range grammar.SplitTopLevel(grammar.TrimSP(part), ';') {
			key, val, ok := grammar.SplitOnce(grammar.TrimSP(field), '=')
			if !ok {
				return nil, malformed()
			}
			switch key {
			case "url":
				item.URL = val
				sawURL = true
			case "seq":
				n, err := strconv.ParseUint(val, 10, 16)
				if err != nil {
					return nil, malformed(err)
				}
				u := uint16(n)
				item.Seq = &u
			case "rtptime":
				n, err := strconv.ParseUint(val, 10, 32)
				if err != nil {
					return nil, malformed(err)
				}
				u := uint32(n)
				item.RTPTime = &u
			default:
				return nil, malformed()
			}
		}
		if !sawURL {
			return nil, malformed()
		}
		items = append(items, item)
	}
	return items, nil
}

func parseRTPInfoV2(raw string) ([]RTPInfoItemV2, error) {
	var items []RTPInfoItemV2
	for _, part := range grammar.SplitTopLevel(raw, ',') {
		part = grammar.TrimSP(part)
		if !strings.HasPrefix(part, "url=") {
			return nil, malformed()
		}
		url, rest, err := grammar.ScanQuotedString(part[len("url="):])
		if err != nil {
			return nil, malformed(err)
		}
		rest = grammar.SkipSP(rest)
		if rest == "" {
			return nil, malformed()
		}

		var ssrcInfos []RTPInfoSSRCInfo
		for _, group := range splitSSRCGroups(rest) {
			info, err := parseRTPInfoSSRCGroup(group)
			if err != nil {
				return nil, err
			}
			ssrcInfos = append(ssrcInfos, info)
		}
		items = append(items, RTPInfoItemV2{URL: url, SSRCInfos: ssrcInfos})
	}
	return items, nil
}

// splitSSRCGroups splits the tail of a v2 RTP-Info item (everything after
// `url="..." `) into its space-separated `ssrc=...` groups. A group's
// parameter tail is itself ';'-delimited, so only a space that precedes the
// next "ssrc=" token is a group boundary.
func splitSSRCGroups(s string) []string {
	var groups []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			continue
		}
		j := i
		for j < len(s) && s[j] == ' ' {
			j++
		}
		if strings.HasPrefix(s[j:], "ssrc=") {
			groups = append(groups, s[start:i])
			start = j
		}
	}
	groups = append(groups, s[start:])
	return groups
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// parseRTPInfoSSRCGroup parses one `ssrc=<8-hex-digits>[:param;...]` group.
func parseRTPInfoSSRCGroup(group string) (RTPInfoSSRCInfo, error) {
	if !strings.HasPrefix(group, "ssrc=") {
		return RTPInfoSSRCInfo{}, malformed()
	}
	rest := group[len("ssrc="):]
	if len(rest) < 8 {
		return RTPInfoSSRCInfo{}, malformed()
	}
	ssrc, rest := rest[:8], rest[8:]
	for i := 0; i < len(ssrc); i++ {
		if !isHexDigit(ssrc[i]) {
			return RTPInfoSSRCInfo{}, malformed()
		}
	}

	info := RTPInfoSSRCInfo{SSRC: ssrc}
	if rest == "" {
		return info, nil
	}
	if rest[0] != ':' {
		return RTPInfoSSRCInfo{}, malformed()
	}
	rest = rest[1:]

	for _, field := range grammar.SplitTopLevel(rest, ';') {
		key, val, ok := grammar.SplitOnce(grammar.TrimSP(field), '=')
		if !ok {
			return RTPInfoSSRCInfo{}, malformed()
		}
		switch key {
		case "seq":
			n, err := strconv.ParseUint(val, 10, 16)
			if err != nil {
				return RTPInfoSSRCInfo{}, malformed(err)
			}
			u := uint16(n)
			info.Seq = &u
		case "rtptime":
			n, err := strconv.ParseUint(val, 10, 32)
			if err != nil {
				return RTPInfoSSRCInfo{}, malformed(err)
			}
			u := uint32(n)
			info.RTPTime = &u
		default:
			if info.Others == nil {
				info.Others = make(map[string]string)
			}
			info.Others[key] = val
		}
	}
	return info, nil
}
