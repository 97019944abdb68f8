package domain

import "errors"

var (
	ErrDraftInvalid     = errors.New("invoice draft failed validation")
	ErrInvalidAmount    = errors.New("amount is not a finite number")
	ErrUpstreamRejected = errors.New("legacy backend rejected the invoice")
	ErrRenderFailed     = errors.New("document rendering failed")
	ErrArtifactStore    = errors.New("storing rendered document failed")
)
