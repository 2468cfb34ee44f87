package document

import "errors"

var (
	// ErrInvalidConfig marks structural failures: malformed input text,
	// or top-level parsed content that is not a mapping. A corrupt
	// document must not be misread as empty.
	ErrInvalidConfig = errors.New("invalid configuration")

	ErrSizeLimit  = errors.New("document exceeds size limit")
	ErrAliasLimit = errors.New("document exceeds alias limit")

	ErrNilConfiguration = errors.New("nil configuration")
)
