package objimport

// AxisForward and AxisUp enumerate the source coordinate-axis remapping
// the traced reference importer accepts on its params struct. Neither is
// consulted by this package: axis remapping is out of scope (spec.md
// Non-goals), and the fields exist solely so callers ported from the
// traced importer's API keep compiling against the same shape.
type AxisForward int

// AxisUp mirrors AxisForward but for the up axis.
type AxisUp int

// Axis values, in the traced importer's declared order.
const (
	AxisXForward AxisForward = iota
	AxisYForward
	AxisZForward
	AxisNegXForward
	AxisNegYForward
	AxisNegZForward
)

const (
	AxisXUp AxisUp = iota
	AxisYUp
	AxisZUp
	AxisNegXUp
	AxisNegYUp
	AxisNegZUp
)

// Params configures a single Import call.
type Params struct {
	// Path is the filesystem path of the OBJ file to read. Required.
	Path string

	// Diag, if set, receives one-line diagnostic messages produced while
	// parsing (unrecognized directives, dropped faces, missing MTL
	// files, duplicate materials). It is never required for correct
	// parsing; nil discards diagnostics.
	Diag func(string)

	// ForwardAxis and UpAxis mirror the traced importer's coordinate-axis
	// remapping options. Kept for API compatibility only: this package
	// never reorients vertex data (spec.md Non-goals), so these are
	// accepted and ignored.
	ForwardAxis AxisForward
	UpAxis      AxisUp

	// ClampSize mirrors the traced importer's clamp_size option (0
	// disables clamping). Kept for API compatibility only: this package
	// never clamp-scales geometry (spec.md Non-goals).
	ClampSize float32
}
