package services

import (
	"strings"
	"time"

	"pairchat/auth"
	"pairchat/errors"
)

type IAuthService interface {
	Login(usernameOrEmail, password string) (Token, error)
}

type Token string

// AuthService verifies the single hardcoded credential pair and issues a
// session token. There is no user store: every accepted login becomes an
// identity the coordinator treats as opaque.
type AuthService struct {
	tokenDuration time.Duration
}

// The development credential pair; both fields are compared
// case-insensitively.
const (
	devUsername = "asd"
	devPassword = "asd"
)

func NewAuthService(tokenDuration time.Duration) IAuthService {
	return &AuthService{tokenDuration: tokenDuration}
}

func (s *AuthService) Login(usernameOrEmail, password string) (Token, error) {
	req := auth.LoginRequest{
		UsernameOrEmail: usernameOrEmail,
		Password:        password,
	}

	// Structural validation before any credential comparison.
	if err := auth.ValidateLogin(req); err != nil {
		return "", err
	}

	if !strings.EqualFold(usernameOrEmail, devUsername) ||
		!strings.EqualFold(password, devPassword) {
		return "", errors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(usernameOrEmail, s.tokenDuration)
	if err != nil {
		return "", err
	}
	return Token(token), nil
}
