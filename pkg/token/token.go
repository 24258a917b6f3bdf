package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carried in issued tokens.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Provider issues and validates HS256 JWTs. The provider is only constructed
// when jwt.enabled is set; the rest of the system treats a nil *Provider as
// "tokens disabled" and leaves the token field null on auth responses.
type Provider struct {
	secret    []byte
	expiresIn time.Duration
}

// NewProvider creates a Provider with the given signing secret and lifetime.
func NewProvider(secret string, expireHours int) *Provider {
	return &Provider{
		secret:    []byte(secret),
		expiresIn: time.Duration(expireHours) * time.Hour,
	}
}

// Generate issues a signed token for the given user.
func (p *Provider) Generate(userID uint, username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "scene-backend",
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Validate parses a token string and returns its claims.
func (p *Provider) Validate(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := parsed.Claims.(*Claims); ok && parsed.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
