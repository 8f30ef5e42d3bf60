package api

import (
	"errors"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell/blog-backend/auth"
	"github.com/inkwell/blog-backend/database"
	"github.com/inkwell/blog-backend/errs"
)

// tokenHeader is the request header carrying the raw signed token.
const tokenHeader = "x-access-token"

type authMiddleware struct {
	tokens    *auth.TokenService
	users     *database.UserRepo
	responder Responder
	logger    zerolog.Logger
}

func newAuthMiddleware(tokens *auth.TokenService, users *database.UserRepo) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		tokens:    tokens,
		users:     users,
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// authenticate resolves the token header to a user and injects it into the
// request context, or rejects the call with a 401. Expired and malformed
// tokens get the same status but are logged apart.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(tokenHeader)
		if raw == "" {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		userID, err := m.tokens.Validate(raw)
		if err != nil {
			if errors.Is(err, errs.ErrExpiredToken) {
				m.logger.Warn().Str("path", r.URL.Path).Msg("expired token")
			} else {
				m.logger.Warn().Str("path", r.URL.Path).Msg("invalid token")
			}
			m.responder.WriteError(w, err)
			return
		}

		user, err := m.users.FindByID(userID)
		if err != nil {
			m.responder.WriteError(w, err)
			return
		}
		if user == nil {
			// Structurally valid token for a user deleted after issuance.
			m.responder.WriteError(w, errs.NewUnauthorizedError("Token is invalid or user not found!"))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithUser(r.Context(), user)))
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// requestIDMiddleware tags every request with an id that shows up in the
// response headers and in every log line written through the context.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		logger := log.With().Str("requestID", requestID).Logger()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
