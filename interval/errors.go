package interval

import (
	"errors"
	"fmt"
)

// ErrUnknownIntervalSymbol indicates an input token is not one of the 12
// catalog symbols.
var ErrUnknownIntervalSymbol = errors.New("unknown interval symbol")

// UnknownIntervalSymbolError carries the offending token.
type UnknownIntervalSymbolError struct {
	Token string
}

func (e *UnknownIntervalSymbolError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownIntervalSymbol, e.Token)
}

func (e *UnknownIntervalSymbolError) Unwrap() error {
	return ErrUnknownIntervalSymbol
}
