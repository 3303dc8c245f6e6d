package comparison

import (
	"errors"
	"fmt"
)

// MissingOperandError reports a comparison with an absent phone.
type MissingOperandError struct {
	// Position is "phone1", "phone2" or "both".
	Position string
}

func (e *MissingOperandError) Error() string {
	return fmt.Sprintf("missing phone to compare: %s", e.Position)
}

// SelfComparisonError reports both operands resolving to the same phone.
type SelfComparisonError struct {
	PhoneID string
}

func (e *SelfComparisonError) Error() string {
	return fmt.Sprintf("cannot compare phone %q with itself", e.PhoneID)
}

// InsufficientOperandsError reports a multi-phone comparison with fewer than
// two phones.
type InsufficientOperandsError struct {
	Got int
}

func (e *InsufficientOperandsError) Error() string {
	return fmt.Sprintf("at least 2 phones are required for a comparison, got %d", e.Got)
}

// IsContractError reports whether err is caused by invalid comparison input
// rather than by a failure while comparing.
func IsContractError(err error) bool {
	var missing *MissingOperandError
	var self *SelfComparisonError
	var insufficient *InsufficientOperandsError
	return errors.As(err, &missing) || errors.As(err, &self) || errors.As(err, &insufficient)
}
