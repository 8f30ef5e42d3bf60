package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/inkwell/blog-backend/auth"
	"github.com/inkwell/blog-backend/database"
	"github.com/inkwell/blog-backend/errs"
	"github.com/inkwell/blog-backend/models"
)

type authHandler struct {
	responder Responder
	userRepo  *database.UserRepo
	tokens    *auth.TokenService
}

func newAuthHandler(userRepo *database.UserRepo, tokens *auth.TokenService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		userRepo:  userRepo,
		tokens:    tokens,
	}
}

// register creates a user from a JSON {username, password} body. The
// plaintext password is hashed before anything is persisted.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Request body is missing JSON"))
			return
		}

		if creds.Username == "" || creds.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Username and password are required"))
			return
		}

		existing, err := h.userRepo.FindByUsername(creds.Username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewConflictError("Username already exists"))
			return
		}

		hash, err := auth.HashPassword(creds.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user := &models.User{Username: creds.Username, PasswordHash: hash}
		if err := h.userRepo.Add(user); err != nil {
			if errs.IsConflict(err) {
				// Lost the race against a concurrent registration.
				h.responder.WriteError(w, errs.NewConflictError("Username already exists"))
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteMessage(w, http.StatusCreated, "User registered successfully")
	}
}

// login verifies credentials and returns a signed token plus the public
// user. A JSON body takes priority; HTTP basic auth is only consulted when
// no JSON body parses.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var username, password string

		var creds credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			var ok bool
			username, password, ok = r.BasicAuth()
			if !ok || username == "" || password == "" {
				w.Header().Set("WWW-Authenticate", `Basic realm="Login required!"`)
				h.responder.WriteError(w, errs.NewApiErr(http.StatusUnauthorized, "Could not verify, missing credentials"))
				return
			}
		} else {
			username, password = creds.Username, creds.Password
			if username == "" || password == "" {
				h.responder.WriteError(w, errs.NewBadRequestError("Username and password required in JSON body"))
				return
			}
		}

		user, err := h.userRepo.FindByUsername(username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// The hash comparison runs whether or not the user exists, and the
		// response is identical either way.
		hash := auth.DummyHash()
		if user != nil {
			hash = user.PasswordHash
		}
		passwordOK := auth.CheckPasswordHash(password, hash)
		if user == nil || !passwordOK {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		token, err := h.tokens.Issue(user.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, loginResponse{Token: token, User: user.Response()})
	}
}

// me returns the authenticated caller in the public user shape.
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, user.Response())
	}
}
