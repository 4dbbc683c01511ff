package argbind

import (
	"errors"
	"fmt"
)

// ErrMissingValue is the cause of an optional argument failure when its flag is
// the last token.
var ErrMissingValue = errors.New("flag requires a value")

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// OptionalConversion means the value following a flag didn't convert.
	OptionalConversion ErrorKind = iota + 1
	// PositionalConversion means a positional token didn't convert.
	PositionalConversion
	// MissingPositional means the tokens ran out before a positional.
	MissingPositional
	// Leftover means tokens remained after every argument was resolved.
	Leftover
)

func (k ErrorKind) String() string {
	switch k {
	case OptionalConversion:
		return "optional conversion"
	case PositionalConversion:
		return "positional conversion"
	case MissingPositional:
		return "missing positional"
	case Leftover:
		return "leftover"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is returned by Parse for any malformed invocation. All of them are
// terminal.
type ParseError struct {
	Kind ErrorKind
	// A display line for the user.
	Reason string
	// The argument being resolved, empty for Leftover.
	Arg string
	// The unconsumed tokens, only set for Leftover.
	Leftover []string
	cause    error
}

func (pe *ParseError) Error() string {
	return pe.Reason
}

func (pe *ParseError) Unwrap() error {
	return pe.cause
}

// Cause supports github.com/pkg/errors.Cause.
func (pe *ParseError) Cause() error {
	return pe.cause
}

type logicError struct {
	msg string
}

func (le logicError) Error() string {
	return le.msg
}
