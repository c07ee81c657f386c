// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type phoneFixture struct {
	Phone string `validate:"required,uz_phone"`
}

func TestUzPhoneValidation(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"international format", "+998901234567", true},
		{"local format", "901234567", true},
		{"with spaces", "+998 90 123 45 67", true},
		{"with dashes", "+998-90-123-45-67", true},
		{"too short", "12345678", false},
		{"too long", "1234567890123456", false},
		{"letters", "+9989012345ab", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&phoneFixture{Phone: tt.phone})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

type validationFixture struct {
	Name     string `validate:"required,max=10"`
	Email    string `validate:"omitempty,email"`
	Category string `validate:"required,oneof=men women unisex"`
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&validationFixture{
		Name:     "",
		Email:    "not-an-email",
		Category: "kids",
	})
	errs := GetValidationErrors(err)

	assert.Len(t, errs, 3)

	byField := make(map[string]ValidationError, len(errs))
	for _, e := range errs {
		byField[e.Field] = e
	}

	assert.Equal(t, "required", byField["name"].Tag)
	assert.Equal(t, "email", byField["email"].Tag)
	assert.Equal(t, "oneof", byField["category"].Tag)
	assert.Contains(t, byField["category"].Message, "men women unisex")
}

func TestGetValidationErrorsNilError(t *testing.T) {
	err := ValidateStruct(&validationFixture{Name: "ok", Category: "men"})
	assert.NoError(t, err)
	assert.Empty(t, GetValidationErrors(err))
}
