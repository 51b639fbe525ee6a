package registration

import (
	"regexp"
	"strings"
	"unicode"

	"storefront/models"
	"storefront/utils"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// ValidateDraft checks the signup form fields. It returns nil when every
// field passes, otherwise a ValidationError carrying one message per
// offending field. No network call happens until this passes.
func ValidateDraft(draft models.RegistrationDraft) *utils.ValidationError {
	fields := map[string]string{}

	if strings.TrimSpace(draft.Name) == "" {
		fields["name"] = "Name is required"
	}
	if !emailPattern.MatchString(draft.Email) {
		fields["email"] = "Enter a valid email address"
	}
	if !phonePattern.MatchString(draft.Phone) {
		fields["phone"] = "Enter a valid 10-digit mobile number"
	}
	if msg := passwordIssue(draft.Password); msg != "" {
		fields["password"] = msg
	}
	if draft.ConfirmPassword != draft.Password {
		fields["confirmPassword"] = "Passwords do not match"
	}

	if len(fields) == 0 {
		return nil
	}
	return &utils.ValidationError{Fields: fields}
}

func passwordIssue(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return "Password must contain an uppercase letter, a lowercase letter, and a digit"
	}
	return ""
}
