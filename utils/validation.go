package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
)

var mobileRegex = regexp.MustCompile(`^[0-9]{10}$`)

// RequireFields fails with missing_field on the first empty or blank value.
// fields is a list of name/value pairs.
func RequireFields(fields ...[2]string) error {
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			return NewValidationError(ReasonMissingField, fmt.Sprintf("%s is required", f[0]))
		}
	}
	return nil
}

// ValidateMobile checks that mobile is exactly ten decimal digits.
func ValidateMobile(mobile string) error {
	if !mobileRegex.MatchString(mobile) {
		return NewValidationError(ReasonInvalidMobile, "Mobile number must be exactly 10 digits")
	}
	return nil
}

// ValidateAmount accepts a JSON number holding a whole amount of at least min
// currency units and returns it as an integer.
func ValidateAmount(v interface{}, min int64) (int64, error) {
	invalid := NewValidationError(ReasonInvalidAmount, fmt.Sprintf("Amount must be a whole number of at least %d", min))

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, invalid
		}
		f = parsed
	default:
		return 0, invalid
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < float64(min) || f > math.MaxInt64/100 {
		return 0, invalid
	}
	return int64(f), nil
}

// ValidateCustomer runs the field checks shared by order creation and verification.
func ValidateCustomer(name, mobile, address string) error {
	if err := RequireFields(
		[2]string{"name", name},
		[2]string{"mobile", mobile},
		[2]string{"address", address},
	); err != nil {
		return err
	}
	return ValidateMobile(mobile)
}
