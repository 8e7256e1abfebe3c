package format

import (
	"errors"

	"transformer-calc/internal/fault"
)

// FormatError maps a calculation error to the message shown to the user.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	switch fault.KindOf(err) {
	case fault.NotNumeric:
		return "ERROR: Please enter valid numerical values for all fields."
	case fault.NonPositive:
		return "Please enter all required values greater than zero."
	case fault.DivisionByZero:
		return "ERROR: Division by zero. Check that voltage and VA values are not zero."
	case fault.Unexpected:
		var fe *fault.Error
		if errors.As(err, &fe) && fe.Msg != "" {
			return "UNEXPECTED ERROR: " + fe.Msg
		}
	}
	return "UNEXPECTED ERROR: " + err.Error()
}
