package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies subject-bound HS256 tokens. It holds no
// server-side token state; every token is reconstructed by verification.
type TokenService struct {
	secret string
	ttl    time.Duration

	// now is swappable in tests to hit the expiry boundary.
	now func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token asserting the given subject, valid for the configured
// window from now.
func (s *TokenService) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}

	issuedAt := s.now().UTC()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": issuedAt.Unix(),
		"exp": issuedAt.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ExtractSubject verifies the token signature and shape and returns the
// subject exactly as issued. Expiry is deliberately not checked here; callers
// combine this with IsExpired.
func (s *TokenService) ExtractSubject(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}

// IsExpired reports whether the token's validity window has elapsed. A token
// that cannot be parsed or lacks an exp claim counts as expired, never as
// valid.
func (s *TokenService) IsExpired(token string) bool {
	claims, err := s.parse(token)
	if err != nil {
		return true
	}

	expFloat, ok := claims["exp"].(float64)
	if !ok {
		return true
	}

	expiresAt := time.Unix(int64(expFloat), 0)
	return !s.now().UTC().Before(expiresAt)
}

// parse verifies the HS256 signature and returns the raw claims. Claims
// validation is disabled so that expiry stays a separate check.
func (s *TokenService) parse(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, jwt.MapClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return []byte(s.secret), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
