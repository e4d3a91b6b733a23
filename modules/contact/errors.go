package contact

import "errors"

var (
	ErrUnknownField      = errors.New("unknown form field")
	ErrInvalidQueryTypes = errors.New("invalid query type options")
)
