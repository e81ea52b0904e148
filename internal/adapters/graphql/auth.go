package graphql

import (
	"context"
	"encoding/json"
	"fmt"

	"travelbook/internal/domain"
)

// AuthService handles credentials and the persisted session token over
// the GraphQL transport.
type AuthService struct {
	c      *Client
	tokens domain.TokenStore
}

func NewAuthService(c *Client, tokens domain.TokenStore) *AuthService {
	return &AuthService{c: c, tokens: tokens}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	data, err := s.c.Mutate(ctx, "login", mLogin, map[string]any{
		"email":    email,
		"password": password,
	}, false)
	if err != nil {
		return domain.AuthResult{}, err
	}
	var out struct {
		Login *authPayload `json:"login"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.AuthResult{}, err
	}
	if out.Login == nil {
		return domain.AuthResult{}, fmt.Errorf("failed to login")
	}
	if err := s.tokens.Save(out.Login.Token); err != nil {
		return domain.AuthResult{}, err
	}
	return domain.AuthResult{Token: out.Login.Token}, nil
}

func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResult, error) {
	data, err := s.c.Mutate(ctx, "register", mRegister, map[string]any{
		"input": map[string]any{
			"email":     req.Email,
			"password":  req.Password,
			"firstName": req.FirstName,
			"lastName":  req.LastName,
		},
	}, false)
	if err != nil {
		return domain.AuthResult{}, err
	}
	var out struct {
		Register *authPayload `json:"register"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.AuthResult{}, err
	}
	if out.Register == nil {
		return domain.AuthResult{}, fmt.Errorf("failed to register")
	}
	if err := s.tokens.Save(out.Register.Token); err != nil {
		return domain.AuthResult{}, err
	}
	return domain.AuthResult{Token: out.Register.Token}, nil
}

// Logout drops the stored token and resets the query cache; no network
// call is involved.
func (s *AuthService) Logout(ctx context.Context) error {
	s.c.ResetCache(ctx)
	return s.tokens.Clear()
}

func (s *AuthService) Profile(ctx context.Context) (domain.User, error) {
	data, err := s.c.Query(ctx, "getUserProfile", qGetUserProfile, nil, true)
	if err != nil {
		return domain.User{}, err
	}
	var out struct {
		Profile *userPayload `json:"getUserProfile"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.User{}, err
	}
	if out.Profile == nil {
		return domain.User{}, fmt.Errorf("failed to fetch user profile")
	}
	return userFromPayload(*out.Profile), nil
}

func (s *AuthService) Authenticated() bool {
	return s.tokens.Authenticated()
}
