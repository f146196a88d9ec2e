package domain

import "errors"

var (
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
	// ErrInvalidAddress will throw if an address fails hex validation
	ErrInvalidAddress = errors.New("Invalid address")
)
