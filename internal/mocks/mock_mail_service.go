package mocks

import "github.com/aniruddha1321/WellNest/domain"

// SentMail records one dispatched message
type SentMail struct {
	To   string
	Code string
	Kind string // "verification" or "reset"
}

// MockMailService implements domain.MailService for testing and records
// every dispatch it was asked to make.
type MockMailService struct {
	SendVerificationEmailFunc func(to, code string) error
	SendResetEmailFunc        func(to, code string) error
	Sent                      []SentMail
}

// NewMockMailService creates a new MockMailService with default behaviors
func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

// SendVerificationEmail dispatches a verification code
func (m *MockMailService) SendVerificationEmail(to, code string) error {
	if m.SendVerificationEmailFunc != nil {
		if err := m.SendVerificationEmailFunc(to, code); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, SentMail{To: to, Code: code, Kind: "verification"})
	return nil
}

// SendResetEmail dispatches a reset code
func (m *MockMailService) SendResetEmail(to, code string) error {
	if m.SendResetEmailFunc != nil {
		if err := m.SendResetEmailFunc(to, code); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, SentMail{To: to, Code: code, Kind: "reset"})
	return nil
}

// Compile-time interface compliance verification
var _ domain.MailService = (*MockMailService)(nil)
