package message

import "github.com/greywire/rtsp/internal/types"

// RenderOptions is accepted by the message renderers (RenderTo, Render and
// WriteLen). It is the library's one caller-facing configuration surface
// (there is nothing else to configure: no transport, no session state).
// RTSP defines no compact header names and no renderer reads Compact, so it
// has no effect on the output. The typed header codec takes no options.
type RenderOptions = types.RenderOptions

// Compile-time assertions that the three message shapes satisfy
// [types.Renderer].
var (
	_ types.Renderer = (*Request[Bytes])(nil)
	_ types.Renderer = (*Response[Bytes])(nil)
	_ types.Renderer = (*Data[Bytes])(nil)
)
