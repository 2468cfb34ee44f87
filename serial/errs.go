package serial

import "errors"

var (
	ErrBadAlias       = errors.New("bad alias")
	ErrDuplicateAlias = errors.New("alias already registered")
	ErrUnknownAlias   = errors.New("unregistered alias")
)
