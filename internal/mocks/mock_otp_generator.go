package mocks

import "github.com/aniruddha1321/WellNest/domain"

// MockOTPGenerator implements domain.OTPGenerator for testing. When Codes is
// non-empty the generator returns them in order, then repeats the last one.
type MockOTPGenerator struct {
	GenerateFunc func() string
	Codes        []string
	next         int
}

// NewMockOTPGenerator creates a new MockOTPGenerator with default behaviors
func NewMockOTPGenerator(codes ...string) *MockOTPGenerator {
	return &MockOTPGenerator{Codes: codes}
}

// Generate produces the next one-time code
func (m *MockOTPGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	if len(m.Codes) > 0 {
		code := m.Codes[m.next]
		if m.next < len(m.Codes)-1 {
			m.next++
		}
		return code
	}
	// Default behavior: fixed code
	return "123456"
}

// Compile-time interface compliance verification
var _ domain.OTPGenerator = (*MockOTPGenerator)(nil)
