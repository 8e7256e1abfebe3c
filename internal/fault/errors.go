package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a calculation failure.
type Kind int

const (
	// NotNumeric means a required field is empty or not a finite decimal number.
	NotNumeric Kind = iota + 1
	// NonPositive means a field parsed but is zero or negative.
	NonPositive
	// DivisionByZero means a denominator evaluated to zero.
	DivisionByZero
	// Unexpected covers any other computation failure.
	Unexpected
)

func (k Kind) String() string {
	switch k {
	case NotNumeric:
		return "not numeric"
	case NonPositive:
		return "non-positive"
	case DivisionByZero:
		return "division by zero"
	case Unexpected:
		return "unexpected"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinels for errors.Is. Any *Error matches the sentinel of its Kind.
var (
	ErrNotNumeric     = &Error{Kind: NotNumeric}
	ErrNonPositive    = &Error{Kind: NonPositive}
	ErrDivisionByZero = &Error{Kind: DivisionByZero}
	ErrUnexpected     = &Error{Kind: Unexpected}
)

// Error is the value returned by every failing calculation.
type Error struct {
	Kind  Kind
	Field string // field key, empty when not tied to one field
	Msg   string
}

func (e *Error) Error() string {
	switch {
	case e.Field != "" && e.Msg != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Msg)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return e.Kind.String()
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func notNumeric(field string) error {
	return &Error{Kind: NotNumeric, Field: field, Msg: "must be a valid number"}
}

func nonPositive(field string) error {
	return &Error{Kind: NonPositive, Field: field, Msg: "must be greater than zero"}
}

func divisionByZero(what string) error {
	return &Error{Kind: DivisionByZero, Msg: what + " is zero"}
}

func unexpected(format string, args ...interface{}) error {
	return &Error{Kind: Unexpected, Msg: fmt.Sprintf(format, args...)}
}
