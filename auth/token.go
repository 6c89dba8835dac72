package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by every session token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenStatus classifies the outcome of a token check.
type TokenStatus int

const (
	TokenValid TokenStatus = iota
	TokenMissing
	TokenMalformed
	TokenExpired
	TokenBadSignature
)

func (s TokenStatus) String() string {
	switch s {
	case TokenValid:
		return "valid"
	case TokenMissing:
		return "missing"
	case TokenMalformed:
		return "malformed"
	case TokenExpired:
		return "expired"
	case TokenBadSignature:
		return "bad_signature"
	default:
		return "unknown"
	}
}

// Verification is the result of Verify. Username is set only when Status is TokenValid.
type Verification struct {
	Status   TokenStatus
	Username string
	Err      error
}

// OK reports whether the token was valid.
func (v Verification) OK() bool {
	return v.Status == TokenValid
}

// TokenManager issues and verifies HS256 session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager returns a manager signing with secret. Tokens expire after ttl.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret is required but was empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %v", ttl)
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token for username.
func (m *TokenManager) Issue(username string) (string, error) {
	now := m.now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and classifies any failure.
func (m *TokenManager) Verify(tokenString string) Verification {
	if tokenString == "" {
		return Verification{Status: TokenMissing}
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Verification{Status: TokenExpired, Err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Verification{Status: TokenBadSignature, Err: err}
	default:
		return Verification{Status: TokenMalformed, Err: err}
	}

	if claims.Username == "" {
		return Verification{Status: TokenMalformed, Err: errors.New("token has no username claim")}
	}
	return Verification{Status: TokenValid, Username: claims.Username}
}
