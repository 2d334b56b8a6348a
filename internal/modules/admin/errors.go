package admin

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrForbidden  = errors.New("staff authorization required")
	ErrValidation = errors.New("invalid input")
)
