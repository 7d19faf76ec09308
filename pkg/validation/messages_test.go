package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FullName", "full_name"},
		{"ContactPhone", "contact_phone"},
		{"PhotoURL", "photo_url"},
		{"ID", "id"},
		{"Email", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, toSnakeCase(tt.in))
		})
	}
}

func TestItemizeBindingError_ValidationErrors(t *testing.T) {
	type payload struct {
		FullName string `validate:"required,min=2"`
		Email    string `validate:"required,email"`
		Age      int    `validate:"required,gt=0"`
	}

	v := validator.New()
	err := v.Struct(payload{Email: "not-an-email"})
	require.Error(t, err)

	details := ItemizeBindingError(err)
	assert.Equal(t, "full_name is required", details["full_name"])
	assert.Equal(t, "email must be a valid email address", details["email"])
	assert.Equal(t, "age is required", details["age"])
}

func TestItemizeBindingError_NonValidatorError(t *testing.T) {
	details := ItemizeBindingError(errors.New("unexpected EOF"))

	require.Len(t, details, 1)
	assert.Contains(t, details["body"], "invalid request body")
}
