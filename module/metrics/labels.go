package metrics

const (
	LabelResource = "resource"
	LabelReason   = "reason"
)

const (
	ResourceUndefined = "undefined"
	ResourceHeadState = "head_state"
)

// round rejection reasons
const (
	ReasonDecodeFailure = "decode_failure"
	ReasonUnknownParent = "unknown_parent"
	ReasonStateMismatch = "state_mismatch"
	ReasonInternal      = "internal"
)
