package iot

import "errors"

var (
	ErrRateLimited      = errors.New("rate limit exceeded")
	ErrDeviceNotFound   = errors.New("device not found")
	ErrServiceMissing   = errors.New("service not available")
	ErrMissingEventType = errors.New("event type is required")
	ErrMissingEventDate = errors.New("event timestamp is required")
)
