package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTitle   = errors.New("title is not valid UTF-8 text")
	ErrInvalidContent = errors.New("content is not valid UTF-8 text")
)
