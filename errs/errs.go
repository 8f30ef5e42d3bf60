package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("malformed request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInternal      = errors.New("internal server error")
)

// Authentication & Authorization Errors
var (
	ErrMissingToken       = errors.New("missing access token")
	ErrExpiredToken       = errors.New("expired access token")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type ApiErr struct {
	StatusCode int
	err        error
	Cause      error // The underlying cause of the error
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	return e.err.Error()
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// GetFullError returns the error message including its cause, if any.
func (e *ApiErr) GetFullError() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s -> %s", e.Error(), e.Cause.Error())
	}
	return e.Error()
}

// messageError carries the transport message verbatim while still matching
// its sentinel through errors.Is.
type messageError struct {
	message  string
	sentinel error
}

func (e *messageError) Error() string { return e.message }
func (e *messageError) Unwrap() error { return e.sentinel }

func withSentinel(message string, sentinel error) error {
	return &messageError{message: message, sentinel: sentinel}
}

// Common error constructors with appropriate HTTP status codes. The message
// is what the client sees, so it must be the exact response body text.

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: withSentinel(message, ErrBadRequest)}
}

func NewUnauthorizedError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: withSentinel(message, ErrUnauthorized)}
}

func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: withSentinel(message, ErrNotFound)}
}

func NewConflictError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusConflict, err: withSentinel(message, ErrAlreadyExists)}
}

// NewInternalError keeps the cause out of the client-facing message; it
// surfaces only through GetFullError in the server log.
func NewInternalError(message string, cause error) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: withSentinel(message, ErrInternal), Cause: cause}
}

// Authentication error constructors. All carry a 401 but wrap distinct
// sentinels so the guard can log them differently.

func NewMissingTokenError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: withSentinel("Token is missing!", ErrMissingToken)}
}

func NewExpiredTokenError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: withSentinel("Token has expired!", ErrExpiredToken)}
}

func NewInvalidTokenError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: withSentinel("Token is invalid!", ErrInvalidToken)}
}

func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: withSentinel("Login failed! Check credentials", ErrInvalidCredentials)}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsUnauthorized(err error) bool {
	var apiErr *ApiErr
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
