package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsKeepMessageVerbatim(t *testing.T) {
	cases := []struct {
		name    string
		err     *ApiErr
		status  int
		message string
	}{
		{"bad request", NewBadRequestError("Invalid user_id format."), http.StatusBadRequest, "Invalid user_id format."},
		{"not found", NewNotFoundError("Blog not found."), http.StatusNotFound, "Blog not found."},
		{"conflict", NewConflictError("Username already exists"), http.StatusConflict, "Username already exists"},
		{"unauthorized", NewUnauthorizedError("Token is invalid or user not found!"), http.StatusUnauthorized, "Token is invalid or user not found!"},
		{"internal", NewInternalError("Failed to save draft.", errors.New("disk full")), http.StatusInternalServerError, "Failed to save draft."},
		{"missing token", NewMissingTokenError(), http.StatusUnauthorized, "Token is missing!"},
		{"expired token", NewExpiredTokenError(), http.StatusUnauthorized, "Token has expired!"},
		{"invalid token", NewInvalidTokenError(), http.StatusUnauthorized, "Token is invalid!"},
		{"invalid credentials", NewInvalidCredentialsError(), http.StatusUnauthorized, "Login failed! Check credentials"},
		{"generic", NewApiErr(http.StatusTeapot, "short and stout"), http.StatusTeapot, "short and stout"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.err.StatusCode)
			assert.Equal(t, tc.message, tc.err.Error())
		})
	}
}

func TestConstructorsWrapSentinels(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("Blog not found.")))
	assert.True(t, IsConflict(NewConflictError("Username already exists")))
	assert.True(t, IsUnauthorized(NewInvalidCredentialsError()))
	assert.True(t, IsUnauthorized(NewUnauthorizedError("nope")))

	assert.True(t, errors.Is(NewBadRequestError("bad"), ErrBadRequest))
	assert.True(t, errors.Is(NewInternalError("boom", nil), ErrInternal))
	assert.True(t, errors.Is(NewMissingTokenError(), ErrMissingToken))
	assert.True(t, errors.Is(NewExpiredTokenError(), ErrExpiredToken))
	assert.True(t, errors.Is(NewInvalidTokenError(), ErrInvalidToken))
	assert.True(t, errors.Is(NewInvalidCredentialsError(), ErrInvalidCredentials))

	assert.False(t, IsNotFound(NewConflictError("taken")))
	assert.False(t, IsUnauthorized(NewNotFoundError("gone")))
}

func TestInternalErrorKeepsCauseOutOfMessage(t *testing.T) {
	err := NewInternalError("Failed to publish blog.", errors.New("constraint violated"))

	assert.Equal(t, "Failed to publish blog.", err.Error())
	assert.Equal(t, "Failed to publish blog. -> constraint violated", err.GetFullError())
}
