package validator

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/yonatanberih/pulse/internal/usecase/contract"
)

// AppValidator implements the usecase contract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator.
func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength checks if the password meets the strength requirements.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !containsClass(password, unicode.IsUpper) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !containsClass(password, unicode.IsLower) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !containsClass(password, unicode.IsNumber) {
		return fmt.Errorf("password must contain at least one number")
	}
	return nil
}

func containsClass(s string, class func(rune) bool) bool {
	for _, char := range s {
		if class(char) {
			return true
		}
	}
	return false
}
