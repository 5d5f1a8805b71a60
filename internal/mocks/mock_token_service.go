package mocks

import (
	"strings"

	"github.com/aniruddha1321/WellNest/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(username string) (string, error)
	ValidateFunc func(token string) (string, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate mints a token for the username
func (m *MockTokenService) Generate(username string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(username)
	}
	// Default behavior: recognizable token bound to the subject
	return "token_for_" + username, nil
}

// Validate checks a token and returns its subject
func (m *MockTokenService) Validate(token string) (string, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: accept only tokens minted by the default Generate
	if subject, ok := strings.CutPrefix(token, "token_for_"); ok && subject != "" {
		return subject, nil
	}
	return "", domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
