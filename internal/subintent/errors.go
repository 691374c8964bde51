package subintent

import "errors"

var (
	ErrInvalidIntent = errors.New("invalid intent type")
	ErrEmptyRule     = errors.New("rule has no terms")
	ErrGenericRule   = errors.New("generic intent is the fallback and cannot be a rule")
)
