package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		err    error
		status int
	}{
		{err: &ErrEmailAlreadyExists{Email: "taro@example.com"}, status: http.StatusConflict},
		{err: &ErrInvalidCredentials{}, status: http.StatusUnauthorized},
		{err: &ErrForbidden{}, status: http.StatusForbidden},
		{err: &ErrUserNotFound{UserID: userID}, status: http.StatusNotFound},
		{err: &ErrValidation{Field: "email", Message: "required"}, status: http.StatusBadRequest},
		{err: fmt.Errorf("anything else"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.err), "error: %v", tt.err)
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrEmailAlreadyExists{Email: "taro@example.com"}).Error(), "taro@example.com")
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())

	userID := uuid.New()
	assert.Contains(t, (&ErrUserNotFound{UserID: userID}).Error(), userID.String())
	assert.Contains(t, (&ErrValidation{Field: "id", Message: "must be a valid UUID"}).Error(), "id")
}
