package values

import (
	"encoding/json"

	"github.com/davidleathers/dialprep/internal/domain/errors"
)

// CleanNumber represents a dialer-ready phone number value object.
// It holds ASCII digits only; every other character of the source string
// is stripped with no semantic interpretation (no country-code handling,
// no extension parsing, no length rule).
type CleanNumber struct {
	digits string
}

// NewCleanNumber creates a CleanNumber by stripping every non-digit byte
// from the raw input. A value that is empty after stripping is invalid.
func NewCleanNumber(raw string) (CleanNumber, error) {
	digits := stripNonDigits(raw)
	if digits == "" {
		return CleanNumber{}, errors.NewValidationError("EMPTY_CLEAN_NUMBER",
			"phone number contains no digits")
	}
	return CleanNumber{digits: digits}, nil
}

// MustNewCleanNumber creates CleanNumber and panics on error (for constants/tests)
func MustNewCleanNumber(raw string) CleanNumber {
	n, err := NewCleanNumber(raw)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the bare digit string
func (n CleanNumber) String() string {
	return n.digits
}

// IsEmpty checks if the number is the zero value
func (n CleanNumber) IsEmpty() bool {
	return n.digits == ""
}

// Equal checks if two CleanNumber values are equal
func (n CleanNumber) Equal(other CleanNumber) bool {
	return n.digits == other.digits
}

// Len returns the digit count
func (n CleanNumber) Len() int {
	return len(n.digits)
}

// MarshalJSON implements JSON marshaling
func (n CleanNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.digits)
}

// UnmarshalJSON implements JSON unmarshaling
func (n *CleanNumber) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	num, err := NewCleanNumber(raw)
	if err != nil {
		return err
	}

	*n = num
	return nil
}

func stripNonDigits(raw string) string {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	return string(digits)
}
