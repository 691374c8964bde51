package gemini

import "errors"

var (
	ErrMissingAPIKey = errors.New("gemini: api key is required")
	ErrMissingModel  = errors.New("gemini: model is required")
	ErrEmptyResponse = errors.New("gemini: response has no text")
)
