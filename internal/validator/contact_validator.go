package validator

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrContactFieldsRequired = errors.New("name, email and message are required")

const maxMessageLen = 5000

func ValidateContact(name, email, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return ErrContactFieldsRequired
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return errors.New("message is too long")
	}
	return nil
}
