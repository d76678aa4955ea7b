package header

import "github.com/greywire/rtsp/message"

// NotifyReasonValue enumerates the Notify-Reason header's recognised values.
type NotifyReasonValue string

const (
	EndOfStream           NotifyReasonValue = "end-of-stream"
	MediaPropertiesUpdate NotifyReasonValue = "media-properties-update"
	ScaleChange           NotifyReasonValue = "scale-change"
)

// NotifyReason is the Notify-Reason header carried on PLAY_NOTIFY requests.
// Unrecognised tokens are preserved in Extension, per §4.4.2.
type NotifyReason struct {
	Value     NotifyReasonValue
	Extension string
}

func (*NotifyReason) CanonicName() message.HeaderName { return "Notify-Reason" }

func (n *NotifyReason) RenderValue() string {
	if n.Value == "" {
		return n.Extension
	}
	return string(n.Value)
}

func (n *NotifyReason) InsertInto(hm *message.HeaderMap) {
	hm.Insert(n.CanonicName(), message.HeaderValue(n.RenderValue()))
}

func (n *NotifyReason) FromHeaders(hm *message.HeaderMap) (bool, error) {
	v, ok := hm.Get(n.CanonicName())
	if !ok {
		return false, nil
	}
	switch NotifyReasonValue(v) {
	case EndOfStream, MediaPropertiesUpdate, ScaleChange:
		n.Value = NotifyReasonValue(v)
		n.Extension = ""
	default:
		n.Value = ""
		n.Extension = string(v)
	}
	return true, nil
}

func (n *NotifyReason) IsValid() bool { return n.Value != "" || n.Extension != "" }
