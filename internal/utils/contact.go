package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/wellnest/internal/pkg/models"
)

var (
	contactValidate = validator.New()
	phoneSeparators = regexp.MustCompile(`[\s\-().]`)
	phonePattern    = regexp.MustCompile(`^\+[0-9]{4,15}$`)
)

// NormalizeContact classifies an OTP subject as a phone number or an email address
// and returns it in canonical form: lower-case email, or E.164 phone with a leading '+'.
func NormalizeContact(subject string) (models.ContactKind, string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", "", fmt.Errorf("contact is required")
	}

	if strings.Contains(subject, "@") {
		email := strings.ToLower(subject)
		if err := contactValidate.Var(email, "email"); err != nil {
			return "", "", fmt.Errorf("invalid email address")
		}
		return models.ContactEmail, email, nil
	}

	phone := phoneSeparators.ReplaceAllString(subject, "")
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}
	if !phonePattern.MatchString(phone) {
		return "", "", fmt.Errorf("invalid phone number")
	}
	return models.ContactPhone, phone, nil
}
