package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Duration int    `validate:"gte=1"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("Valid struct", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Email: "user@example.com", Duration: 50})
		assert.Empty(t, errs)
	})

	t.Run("Missing required field", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Duration: 50})
		require.Len(t, errs, 1)
		assert.Equal(t, "Email", errs[0].Field)
		assert.Equal(t, "required", errs[0].Tag)
		assert.Equal(t, "Email is required", errs[0].Message)
	})

	t.Run("Invalid email", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Email: "not-an-email", Duration: 50})
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Tag)
		assert.Equal(t, "Email must be a valid email address", errs[0].Message)
	})

	t.Run("Multiple errors", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Email: "bad", Duration: 0})
		assert.Len(t, errs, 2)
	})
}

func TestRespondWithValidationErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	errs := ValidateStruct(sampleRequest{Duration: 0})
	RespondWithValidationErrors(c, errs)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
}
