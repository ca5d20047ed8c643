package client

import (
	"errors"
	"regexp"
)

var (
	ErrMissingRequiredFields = errors.New("please fill in all required fields")
	ErrInvalidEmail          = errors.New("please enter a valid email address")
	ErrInvalidPhone          = errors.New("please enter a valid phone number")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// ValidateOrder applies the pickup-form rules locally, before any network
// call: name, phone, address and pickup date are required; the email, when
// given, must look like one; the phone must carry 10 or 11 digits.
func ValidateOrder(o Order) error {
	if o.Name == "" || o.Phone == "" || o.Address == "" || o.PickupDate == "" {
		return ErrMissingRequiredFields
	}
	if o.Email != "" && !emailPattern.MatchString(o.Email) {
		return ErrInvalidEmail
	}
	digits := nonDigits.ReplaceAllString(o.Phone, "")
	if len(digits) < 10 || len(digits) > 11 {
		return ErrInvalidPhone
	}
	return nil
}
