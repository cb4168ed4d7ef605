package lark

import (
	"errors"
	"fmt"
)

var (
	// ErrNullParameter is returned when a required handle is missing.
	ErrNullParameter = errors.New("lark: null parameter")
	// ErrInvalidParameter is returned when a value falls outside its legal range.
	ErrInvalidParameter = errors.New("lark: invalid parameter")
	// ErrUnableToFindConfiguration is returned when no PLL configuration satisfies the divider constraints.
	ErrUnableToFindConfiguration = fmt.Errorf("%w: unable to find PLL configuration", ErrInvalidParameter)
	// ErrTimeout is returned when a polled status bit never sets.
	ErrTimeout = errors.New("lark: timed out")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}
