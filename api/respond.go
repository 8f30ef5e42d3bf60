package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON writes data as a JSON body with the given status code.
func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteMessage writes a `{message}` body with the given status code.
func (r Responder) WriteMessage(w http.ResponseWriter, status int, message string) {
	r.WriteJSON(w, status, map[string]string{"message": message})
}

// WriteError translates err into a `{message}` body. An ApiErr keeps its
// own message and status code; for server-side failures the cause stays in
// the log while the body carries only the public message. Anything that is
// not an ApiErr becomes a generic 500.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteMessage(w, http.StatusInternalServerError, "An internal server error occurred.")
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Msg(apiErr.GetFullError())
	}
	r.WriteMessage(w, apiErr.StatusCode, apiErr.Error())
}
