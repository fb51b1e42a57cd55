package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `validate:"required,max=5"`
	Email string `validate:"omitempty,email"`
}

func TestValidationErrors_MatchesSentinel(t *testing.T) {
	bag := apperrors.NewValidationErrors()
	bag.Add("name", "The name field is required.")

	wrapped := fmt.Errorf("service: %w", bag)

	assert.True(t, errors.Is(wrapped, apperrors.ErrValidation))
	got, ok := apperrors.AsValidationErrors(wrapped)
	require.True(t, ok)
	assert.Equal(t, []string{"The name field is required."}, got["name"])
}

func TestValidationErrors_OrNil(t *testing.T) {
	assert.NoError(t, apperrors.NewValidationErrors().OrNil())

	bag := apperrors.NewValidationErrors()
	bag.Add("ids.0", "bad")
	assert.Error(t, bag.OrNil())
	assert.Contains(t, bag.Error(), "ids.0: bad")
}

func TestAsValidationErrors_FromValidator(t *testing.T) {
	v := validator.New()
	err := v.Struct(sampleRequest{Name: "too long", Email: "nope"})
	require.Error(t, err)

	bag, ok := apperrors.AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"The Name may not be greater than 5 characters."}, bag["Name"])
	assert.Equal(t, []string{"The Email must be a valid email address."}, bag["Email"])
}

func TestAsValidationErrors_OtherError(t *testing.T) {
	_, ok := apperrors.AsValidationErrors(assert.AnError)
	assert.False(t, ok)
}

func TestAppError_Unwrap(t *testing.T) {
	err := apperrors.NewAppError(500, "failed to begin transaction", assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "failed to begin transaction: "+assert.AnError.Error(), err.Error())
}
