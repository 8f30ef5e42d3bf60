package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwell/blog-backend/errs"
)

type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed, time-limited bearer tokens
// carrying a user identity.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs an HS256 token for userID, expiring after the service TTL.
func (s *TokenService) Issue(userID int) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies the signature and expiry and returns the embedded user
// id. Expired tokens and structurally invalid ones fail with distinct
// sentinels; both carry a 401.
func (s *TokenService) Validate(raw string) (int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, errs.NewExpiredTokenError()
		}
		return 0, errs.NewInvalidTokenError()
	}
	if !token.Valid {
		return 0, errs.NewInvalidTokenError()
	}

	return claims.UserID, nil
}
