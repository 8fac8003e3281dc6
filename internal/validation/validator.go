package validation

import (
	"strings"

	"quizsheet/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

const (
	maxUsernameLength = 50
	maxPasswordLength = 128
)

// ValidateLoginRequest validates the login request fields.
func (v *Validator) ValidateLoginRequest(username, password string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(username) == "" {
		errors = append(errors, domain.NewMissingFieldError("username"))
	} else if len(username) > maxUsernameLength {
		errors = append(errors, domain.NewOutOfRangeError("username", len(username), 1, maxUsernameLength))
	}

	if password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	} else if len(password) > maxPasswordLength {
		errors = append(errors, domain.NewOutOfRangeError("password", len(password), 1, maxPasswordLength))
	}

	return errors
}

// ValidateAnswerChoice validates a submitted option code. An empty choice is
// allowed through here so the session state machine can reject it as an
// empty submission without advancing; a non-empty value must be one of the
// four option codes the form can offer.
func (v *Validator) ValidateAnswerChoice(choice string) domain.ValidationErrors {
	trimmed := strings.TrimSpace(choice)
	if trimmed == "" {
		return nil
	}
	if !isOptionCode(trimmed) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("choice", choice)}
	}
	return nil
}

// isOptionCode checks for one of "1".."4".
func isOptionCode(s string) bool {
	return len(s) == 1 && s[0] >= '1' && s[0] <= '4'
}
