package inbox

import "errors"

var (
	ErrNotFound   = errors.New("message not found")
	ErrForbidden  = errors.New("staff authorization required")
	ErrValidation = errors.New("invalid input")
)
