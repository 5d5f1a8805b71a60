package domain

import "context"

// AccountRepository defines account data access operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id uint) error
}

// AccountService defines the account lifecycle business logic. Expected
// conditions (conflicts, bad codes, expiries) resolve into the AuthOutcome;
// the error return carries only unexpected failures from the store, hasher
// or token signer.
type AccountService interface {
	Signup(ctx context.Context, req SignupRequest) (AuthOutcome, error)
	SendVerification(ctx context.Context, email string) (AuthOutcome, error)
	VerifyEmail(ctx context.Context, email, code string) (AuthOutcome, error)
	Login(ctx context.Context, req LoginRequest) (AuthOutcome, error)
	ForgotPassword(ctx context.Context, email string) (AuthOutcome, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (AuthOutcome, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines bearer token operations. Tokens are self-contained
// and stay valid for their full TTL once issued; there is no revocation.
type TokenService interface {
	Generate(username string) (string, error)
	Validate(token string) (string, error)
}

// OTPGenerator produces fixed-width numeric one-time codes
type OTPGenerator interface {
	Generate() string
}

// MailService defines transactional mail dispatch. Delivery is synchronous
// from the caller's perspective; each call makes a single attempt.
type MailService interface {
	SendVerificationEmail(to, code string) error
	SendResetEmail(to, code string) error
}
