package rest

import (
	"context"

	"travelbook/internal/domain"
)

// AuthService handles credentials and the persisted session token.
type AuthService struct {
	c      *Client
	tokens domain.TokenStore
}

func NewAuthService(c *Client, tokens domain.TokenStore) *AuthService {
	return &AuthService{c: c, tokens: tokens}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out authResponse
	if err := s.c.post(ctx, "auth.login", "/auth/login", in, &out, false); err != nil {
		return domain.AuthResult{}, err
	}
	if err := s.tokens.Save(out.Token); err != nil {
		return domain.AuthResult{}, err
	}
	return domain.AuthResult{Token: out.Token}, nil
}

func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResult, error) {
	in := struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}{req.Email, req.Password, req.FirstName, req.LastName}

	var out authResponse
	if err := s.c.post(ctx, "auth.register", "/auth/register", in, &out, false); err != nil {
		return domain.AuthResult{}, err
	}
	if err := s.tokens.Save(out.Token); err != nil {
		return domain.AuthResult{}, err
	}
	return domain.AuthResult{Token: out.Token}, nil
}

// Logout drops the stored token; no network call is involved.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.tokens.Clear()
}

func (s *AuthService) Profile(ctx context.Context) (domain.User, error) {
	var out userResponse
	if err := s.c.get(ctx, "auth.profile", "/user/profile", nil, &out, true); err != nil {
		return domain.User{}, err
	}
	return userFromResponse(out), nil
}

func (s *AuthService) Authenticated() bool {
	return s.tokens.Authenticated()
}
