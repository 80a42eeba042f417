package errors

import (
	"slices"
	"strings"
)

// ValidateID checks a 1-indexed identifier read from an instance file.
// Ids are converted to 0-indexed form by the caller; zero is rejected because
// it would underflow. A limit of zero or less disables the upper bound check.
func ValidateID(kind string, id, limit int) error {
	if id < 1 {
		return New(ErrCodeInvalidInput, "%s id %d out of range (ids start at 1)", kind, id)
	}
	if limit > 0 && id > limit {
		return New(ErrCodeInvalidInput, "%s id %d out of range (max %d)", kind, id, limit)
	}
	return nil
}

// ValidateChoice checks that value is one of the allowed choices.
// Comparison is case-sensitive. The code is attached to the returned error.
func ValidateChoice(code Code, field, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return New(code, "invalid %s: %q (must be one of: %s)", field, value, strings.Join(allowed, ", "))
}
