package classifier

import "errors"

var (
	ErrUnknownFormat   = errors.New("unknown model format")
	ErrFeatureMismatch = errors.New("model features do not match the scoring feature order")
	ErrDimension       = errors.New("feature dimension mismatch")
	ErrInvalidForest   = errors.New("invalid random forest")
)
