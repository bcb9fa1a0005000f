package iso7816

import (
	"errors"
	"fmt"
)

// Construction and decoding errors. Every decoding failure wraps ErrMalformed.
var (
	ErrInvalidCommand = errors.New("invalid command APDU")

	ErrMalformed     = errors.New("malformed APDU")
	ErrTooShort      = fmt.Errorf("%w: too short", ErrMalformed)
	ErrTruncated     = fmt.Errorf("%w: not enough data bytes in payload", ErrMalformed)
	ErrTrailingBytes = fmt.Errorf("%w: too many bytes in payload", ErrMalformed)
)
