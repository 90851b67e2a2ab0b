package validation

// Validation messages
const (
	MsgRequired           = "field required"
	MsgNotFinite          = "must be a finite number"
	MsgNotInteger         = "must be an integer"
	MsgNotBinary          = "must be 0 or 1"
	MsgMultipleIndicators = "at most one transaction type indicator may be set"
)

// MaxSafeInteger is the largest integer a float64 represents exactly (2^53).
const MaxSafeInteger = 1 << 53
