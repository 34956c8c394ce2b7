package kernel

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

var ErrPhoneNumberIsNotConstructed = errors.New("PhoneNumber must be created via NewPhoneNumber constructor")

// PhoneNumber is an international number reduced to its digits, the form wa.me links expect.
// Spaces, dashes, dots, parentheses and a leading plus are accepted on input and dropped.
//
// Example:
//
//	number, err := kernel.NewPhoneNumber("+20 102 471 3976")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(number) // 201024713976
type PhoneNumber struct {
	digits string
}

// NewPhoneNumber normalizes raw and checks it holds 7 to 15 digits (E.164 length).
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PhoneNumber{}, errs.NewValueIsRequiredError("whatsappNumber")
	}

	var b strings.Builder
	for i, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return PhoneNumber{}, errs.NewValueIsInvalidErrorWithCause(
				"whatsappNumber",
				errors.New("only digits, spaces, dashes, dots, parentheses and a leading plus are allowed"),
			)
		}
	}

	digits := b.String()
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return PhoneNumber{}, errs.NewValueIsOutOfRangeError("whatsappNumber digits", len(digits), minPhoneDigits, maxPhoneDigits)
	}

	return PhoneNumber{digits: digits}, nil
}

// String returns the digits only.
func (p PhoneNumber) String() string {
	return p.digits
}

func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.digits == other.digits
}

func (p PhoneNumber) Validate() error {
	if p.digits == "" {
		return ErrPhoneNumberIsNotConstructed
	}
	return nil
}
