package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/spellcms/spellcms/types"
)

// Auth calls get a tighter deadline than collection calls.
const authTimeout = 5 * time.Second

var (
	// ErrUserExists is the domain mapping of a register conflict.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidEmail is returned before any network call when the
	// email fails the client-side shape check.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrMissingCredentials is returned when email or password is empty.
	ErrMissingCredentials = errors.New("email and password are required")
)

// AuthResult is a successful login or register response.
type AuthResult struct {
	Token string     `json:"token"`
	User  types.User `json:"user"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register payload.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthService wraps the register and login endpoints.
type AuthService struct {
	client *Client
}

// NewAuthService constructs an AuthService over the shared client.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a token and user.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (AuthResult, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := checkEmail(creds.Email, creds.Password); err != nil {
		return AuthResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	var result AuthResult
	if err := s.client.do(ctx, http.MethodPost, "/login", creds, &result); err != nil {
		return AuthResult{}, err
	}
	return result, nil
}

// Register creates an account and returns a token and user. A conflict on
// the email maps to ErrUserExists.
func (s *AuthService) Register(ctx context.Context, reg Registration) (AuthResult, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Name = strings.TrimSpace(reg.Name)
	if err := checkEmail(reg.Email, reg.Password); err != nil {
		return AuthResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	var result AuthResult
	if err := s.client.do(ctx, http.MethodPost, "/register", reg, &result); err != nil {
		if IsConflict(err) {
			return AuthResult{}, ErrUserExists
		}
		return AuthResult{}, err
	}
	return result, nil
}

// Me returns the user the current token belongs to.
func (s *AuthService) Me(ctx context.Context) (types.User, error) {
	ctx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	var user types.User
	if err := s.client.do(ctx, http.MethodGet, "/me", nil, &user); err != nil {
		return types.User{}, err
	}
	return user, nil
}

func checkEmail(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return nil
}
