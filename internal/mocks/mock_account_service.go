package mocks

import (
	"context"

	"github.com/aniruddha1321/WellNest/domain"
)

// MockAccountService implements domain.AccountService for testing handlers
type MockAccountService struct {
	SignupFunc           func(ctx context.Context, req domain.SignupRequest) (domain.AuthOutcome, error)
	SendVerificationFunc func(ctx context.Context, email string) (domain.AuthOutcome, error)
	VerifyEmailFunc      func(ctx context.Context, email, code string) (domain.AuthOutcome, error)
	LoginFunc            func(ctx context.Context, req domain.LoginRequest) (domain.AuthOutcome, error)
	ForgotPasswordFunc   func(ctx context.Context, email string) (domain.AuthOutcome, error)
	ResetPasswordFunc    func(ctx context.Context, email, code, newPassword string) (domain.AuthOutcome, error)
}

// NewMockAccountService creates a new MockAccountService with default behaviors
func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

// Signup registers a new account
func (m *MockAccountService) Signup(ctx context.Context, req domain.SignupRequest) (domain.AuthOutcome, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return domain.SuccessOutcome("", req.Email, req.FullName, "User registered successfully. Please check your email for the verification code."), nil
}

// SendVerification issues a fresh verification code
func (m *MockAccountService) SendVerification(ctx context.Context, email string) (domain.AuthOutcome, error) {
	if m.SendVerificationFunc != nil {
		return m.SendVerificationFunc(ctx, email)
	}
	return domain.SuccessOutcome("", email, "", "Verification code sent"), nil
}

// VerifyEmail consumes a verification code
func (m *MockAccountService) VerifyEmail(ctx context.Context, email, code string) (domain.AuthOutcome, error) {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, email, code)
	}
	return domain.SuccessOutcome("token_for_"+email, email, "", "Email verified successfully"), nil
}

// Login authenticates by username and password
func (m *MockAccountService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthOutcome, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return domain.SuccessOutcome("token_for_"+req.Username, "", "", "Login successful"), nil
}

// ForgotPassword issues a reset code when the account exists
func (m *MockAccountService) ForgotPassword(ctx context.Context, email string) (domain.AuthOutcome, error) {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return domain.SuccessOutcome("", email, "", "If this email exists, a password reset code has been sent"), nil
}

// ResetPassword consumes a reset code and replaces the password
func (m *MockAccountService) ResetPassword(ctx context.Context, email, code, newPassword string) (domain.AuthOutcome, error) {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, code, newPassword)
	}
	return domain.SuccessOutcome("", email, "", "Password reset successful"), nil
}

// Compile-time interface compliance verification
var _ domain.AccountService = (*MockAccountService)(nil)
