package domain

import "errors"

var (
	ErrInvalidSettings   = errors.New("invalid settings")
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")
	ErrMalformedSnapshot = errors.New("malformed snapshot")
	ErrSourceUnavailable = errors.New("line source unavailable")
)
