package utils

import (
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MinContentLen = 1
	MaxContentLen = 140
	MaxBoardIDLen = 6
)

var boardCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{1,6}$`)

// Validate checks model structs before they are written to the store.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterCustomValidators(v)
	return v
}

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("password", ValidatePasswordRule)
	v.RegisterValidation("boardcode", ValidateBoardCodeRule)
}

// InitValidator registers the custom rules on gin's binding engine.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidators(v)
	}
}

func ValidatePasswordRule(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String())
}

func ValidateBoardCodeRule(fl validator.FieldLevel) bool {
	return ValidBoardCode(fl.Field().String())
}

// ValidBoardCode reports whether code could be a board code.
func ValidBoardCode(code string) bool {
	return boardCodePattern.MatchString(code)
}

func ValidatePassword(password string) bool {
	// Password must:
	// - Be at least 6 characters long
	// - Contain at least one number
	if len(password) < 6 {
		return false
	}

	for _, char := range password {
		if unicode.IsNumber(char) {
			return true
		}
	}
	return false
}
