package middleware

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
	OrderDate string `json:"order_date" binding:"omitempty,datetime=2006-01-02"`
	Email     string `json:"email" binding:"omitempty,email"`
	Ignored   string `json:"-"`
}

func TestValidationMessage(t *testing.T) {
	SetupValidator()

	t.Run("uses json names", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&sampleInput{OrderDate: "19/04/2025", Email: "nope"})
		require.Error(t, err)

		msg := ValidationMessage(err)
		assert.Contains(t, msg, "quantity: is required")
		assert.Contains(t, msg, "order_date: must match 2006-01-02")
		assert.Contains(t, msg, "email: must be a valid email")
	})

	t.Run("gt", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&sampleInput{Quantity: -3})
		require.Error(t, err)
		assert.Equal(t, "quantity: must be greater than 0", ValidationMessage(err))
	})

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, binding.Validator.ValidateStruct(&sampleInput{Quantity: 2, OrderDate: "2025-04-19"}))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, "boom", ValidationMessage(errors.New("boom")))
	})
}
