package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/irisdrone/tracker/models"
)

var (
	// ErrInvalidCredentials is returned by Login for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized means no identity could be resolved from the request.
	ErrUnauthorized = errors.New("unauthorized")
)

// UserStore resolves users by name. It returns a nil user and nil error when
// the name is unknown.
type UserStore interface {
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Service performs logins and resolves bearer tokens to users.
type Service struct {
	users  UserStore
	tokens *TokenManager
}

func NewService(users UserStore, tokens *TokenManager) *Service {
	return &Service{users: users, tokens: tokens}
}

// Login checks the credentials and returns a signed token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil || !CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.Username)
}

// Authenticate resolves an Authorization header value to a live user.
//
// It returns ErrUnauthorized when the header is absent or malformed, the token
// fails verification, or the user no longer exists. The Verification says which.
// Any other error comes from the store.
func (s *Service) Authenticate(ctx context.Context, header string) (*models.User, Verification, error) {
	v := s.tokens.Verify(BearerToken(header))
	if !v.OK() {
		return nil, v, ErrUnauthorized
	}

	user, err := s.users.UserByUsername(ctx, v.Username)
	if err != nil {
		return nil, v, err
	}
	if user == nil {
		return nil, v, ErrUnauthorized
	}
	return user, v, nil
}

// BearerToken extracts the token from "Bearer <token>". Anything else yields "".
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" || token == "" || strings.Contains(token, " ") {
		return ""
	}
	return token
}
