package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/inkwell/blog-backend/errs"
)

func TestWriteErrorUsesApiErrMessageAndStatus(t *testing.T) {
	responder := NewResponder(zerolog.Nop())

	w := httptest.NewRecorder()
	responder.WriteError(w, errs.NewNotFoundError("Blog not found."))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Blog not found.", messageOf(t, w))

	// The cause stays in the log; the body carries only the public message.
	w = httptest.NewRecorder()
	responder.WriteError(w, errs.NewInternalError("Failed to delete blog.", errors.New("database is locked")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to delete blog.", messageOf(t, w))
	assert.NotContains(t, w.Body.String(), "locked")
}

func TestWriteErrorMasksUnexpectedErrors(t *testing.T) {
	responder := NewResponder(zerolog.Nop())

	w := httptest.NewRecorder()
	responder.WriteError(w, errors.New("pq: connection reset"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "An internal server error occurred.", messageOf(t, w))
}
