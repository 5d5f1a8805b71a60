package domain

import "time"

// Account represents a WellNest account. The verification and reset
// code/expiry pairs are either both nil or both set; a pair is written when a
// code is issued and cleared when the code is consumed. The two pairs have
// independent lifecycles.
type Account struct {
	ID                 uint
	FullName           string
	Email              string
	Username           string
	PasswordHash       string
	PhoneNumber        string
	Active             bool
	VerificationCode   *string
	VerificationExpiry *time.Time
	ResetCode          *string
	ResetExpiry        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasVerificationCode reports whether an outstanding verification pair exists.
func (a *Account) HasVerificationCode() bool {
	return a.VerificationCode != nil && a.VerificationExpiry != nil
}

// HasResetCode reports whether an outstanding reset pair exists.
func (a *Account) HasResetCode() bool {
	return a.ResetCode != nil && a.ResetExpiry != nil
}

// SetVerificationCode issues a new verification pair, invalidating any prior one.
func (a *Account) SetVerificationCode(code string, expiry time.Time) {
	a.VerificationCode = &code
	a.VerificationExpiry = &expiry
}

// ClearVerificationCode removes the verification pair.
func (a *Account) ClearVerificationCode() {
	a.VerificationCode = nil
	a.VerificationExpiry = nil
}

// SetResetCode issues a new reset pair, invalidating any prior one.
func (a *Account) SetResetCode(code string, expiry time.Time) {
	a.ResetCode = &code
	a.ResetExpiry = &expiry
}

// ClearResetCode removes the reset pair.
func (a *Account) ClearResetCode() {
	a.ResetCode = nil
	a.ResetExpiry = nil
}

// SignupRequest represents registration input
type SignupRequest struct {
	FullName    string
	Email       string
	Username    string
	Password    string
	PhoneNumber string
}

// LoginRequest represents authentication credentials
type LoginRequest struct {
	Username string
	Password string
}

// AuthOutcome is the closed result every lifecycle operation resolves to.
// Success is the authoritative tag; Token is set only when the operation
// authenticates the caller (login, first-time verification). Message is
// advisory text and must not be parsed by callers.
type AuthOutcome struct {
	Success  bool
	Token    string
	Email    string
	FullName string
	Message  string
}

// SuccessOutcome builds the success shape.
func SuccessOutcome(token, email, fullName, message string) AuthOutcome {
	return AuthOutcome{
		Success:  true,
		Token:    token,
		Email:    email,
		FullName: fullName,
		Message:  message,
	}
}

// FailureOutcome builds the failure shape, carrying only a message.
func FailureOutcome(message string) AuthOutcome {
	return AuthOutcome{Message: message}
}
