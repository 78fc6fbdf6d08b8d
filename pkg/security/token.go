package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid covers every way a session token can fail verification:
// bad signature, wrong algorithm, malformed payload or expiry. Callers
// never need to distinguish, they all turn into a 401.
var ErrTokenInvalid = errors.New("token is invalid or expired")

// TokenService signs and verifies session tokens. It holds no state
// besides the secret and TTL it was constructed with.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Sign produces a time-limited HS256 token carrying the user's ID.
func (s *TokenService) Sign(userID string) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	})

	return t.SignedString(s.secret)
}

// Verify checks the signature and expiry of tokenStr and returns the
// embedded user ID. Any failure is reported as ErrTokenInvalid.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrTokenInvalid
	}

	return userID, nil
}
