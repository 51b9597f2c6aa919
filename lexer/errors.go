package lexer

import (
	"errors"
	"fmt"
)

// ErrInvalidToken is wrapped by every error caused by unrecognized input.
var ErrInvalidToken = errors.New("invalid token")

// InvalidTokenError reports the byte offset where no lexical pattern
// matched.
type InvalidTokenError struct {
	Offset int
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("%v at offset %d", ErrInvalidToken, e.Offset)
}

func (e *InvalidTokenError) Unwrap() error {
	return ErrInvalidToken
}
