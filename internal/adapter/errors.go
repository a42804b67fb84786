package adapter

import "errors"

var (
	ErrBadRequest         = errors.New("assist service rejected the request")
	ErrServiceUnavailable = errors.New("assist service unavailable")
)
