package reconcile

import (
	"errors"
	"fmt"
)

// Kind classifies manifest check failures.
type Kind int

const (
	// KindGeneric is reserved for failures that fit no other kind.
	KindGeneric Kind = iota
	// KindParse means the manifest is malformed or fails validation.
	KindParse
	// KindIO means the manifest or the asset directory could not be read.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindIO:
		return "io"
	default:
		return "generic"
	}
}

// Error is a manifest check failure tagged with its kind.
type Error struct {
	Kind Kind
	Err  error
}

// ErrGeneric is the unclassified manifest error.
var ErrGeneric = &Error{Kind: KindGeneric}

// NewParseError wraps err as a parse failure.
func NewParseError(err error) *Error {
	return &Error{Kind: KindParse, Err: err}
}

// NewIOError wraps err as an I/O failure.
func NewIOError(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindParse:
		return fmt.Sprintf("Error trying to parse the manifest: %v", e.Err)
	case KindIO:
		return fmt.Sprintf("Error trying to read a file/directory: %v", e.Err)
	default:
		return "Generic Error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or KindGeneric.
func KindOf(err error) Kind {
	var me *Error
	if errors.As(err, &me) {
		return me.Kind
	}
	return KindGeneric
}

// IsParse reports whether err is a manifest parse failure.
func IsParse(err error) bool {
	var me *Error
	return errors.As(err, &me) && me.Kind == KindParse
}

// IsIO reports whether err is a manifest I/O failure.
func IsIO(err error) bool {
	var me *Error
	return errors.As(err, &me) && me.Kind == KindIO
}
