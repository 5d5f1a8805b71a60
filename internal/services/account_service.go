package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aniruddha1321/WellNest/domain"
)

// Response messages. These are advisory text only; callers decide success
// from the outcome tag and token, never by parsing these strings.
const (
	msgSignupSuccess       = "User registered successfully. Please check your email for the verification code."
	msgEmailTaken          = "Email already registered"
	msgUsernameTaken       = "Username already taken"
	msgAccountTaken        = "Email or username already registered"
	msgMailFailed          = "Could not send verification email. Please try again."
	msgAccountNotFound     = "No account found with this email"
	msgAlreadyVerified     = "Account is already verified"
	msgVerificationSent    = "Verification code sent"
	msgInvalidEmailOrCode  = "Invalid email or code"
	msgNoVerificationCode  = "No verification code found"
	msgVerificationExpired = "Verification code has expired"
	msgInvalidVerification = "Invalid verification code"
	msgEmailVerified       = "Email verified successfully"
	msgInvalidLogin        = "Invalid username or password"
	msgNotVerified         = "Account not verified. Please verify your email before logging in."
	msgLoginSuccess        = "Login successful"
	msgForgotNeutral       = "If this email exists, a password reset code has been sent"
	msgNoResetCode         = "No reset code found"
	msgResetExpired        = "Reset code has expired"
	msgInvalidResetCode    = "Invalid reset code"
	msgResetSuccess        = "Password reset successful"
)

// AccountServiceImpl implements domain.AccountService
type AccountServiceImpl struct {
	accountRepo domain.AccountRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpGen      domain.OTPGenerator
	mailSvc     domain.MailService
	otpTTL      time.Duration
}

// NewAccountService creates a new account lifecycle service
func NewAccountService(
	accountRepo domain.AccountRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpGen domain.OTPGenerator,
	mailSvc domain.MailService,
	otpTTL time.Duration,
) domain.AccountService {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpGen:      otpGen,
		mailSvc:     mailSvc,
		otpTTL:      otpTTL,
	}
}

// Signup implements domain.AccountService. The existence checks are a fast
// path only; the store's unique indexes are the authoritative guard and a
// write-time violation resolves to the same conflict outcome. If the
// verification mail cannot be dispatched the new account is rolled back, so
// no unreachable unverified account survives the failure.
func (s *AccountServiceImpl) Signup(ctx context.Context, req domain.SignupRequest) (domain.AuthOutcome, error) {
	taken, err := s.accountRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return domain.AuthOutcome{}, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return domain.FailureOutcome(msgEmailTaken), nil
	}

	taken, err = s.accountRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return domain.AuthOutcome{}, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return domain.FailureOutcome(msgUsernameTaken), nil
	}

	hashedPassword, err := s.passwordSvc.Hash(req.Password)
	if err != nil {
		return domain.AuthOutcome{}, fmt.Errorf("failed to hash password: %w", err)
	}

	code := s.otpGen.Generate()
	account := &domain.Account{
		FullName:     req.FullName,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hashedPassword,
		PhoneNumber:  req.PhoneNumber,
		Active:       false,
	}
	account.SetVerificationCode(code, time.Now().Add(s.otpTTL))

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			// Lost the race with a concurrent signup. The store does not say
			// which index collided, so the message names neither.
			return domain.FailureOutcome(msgAccountTaken), nil
		}
		return domain.AuthOutcome{}, fmt.Errorf("failed to create account: %w", err)
	}

	if err := s.mailSvc.SendVerificationEmail(account.Email, code); err != nil {
		if delErr := s.accountRepo.Delete(ctx, account.ID); delErr != nil {
			log.Printf("audit: %v", domain.NewAuditEvent(domain.AccountRollbackEvent, account.ID).
				WithEmail(account.Email).WithError(delErr))
		}
		return domain.FailureOutcome(msgMailFailed), nil
	}

	log.Printf("audit: %v", domain.NewAuditEvent(domain.AccountRegisteredEvent, account.ID).
		WithEmail(account.Email).WithUsername(account.Username))

	return domain.SuccessOutcome("", account.Email, account.FullName, msgSignupSuccess), nil
}

// SendVerification implements domain.AccountService. A new code invalidates
// any prior one immediately. Unlike signup, a mail failure here does not roll
// back the new pair: the account already exists and stays reachable for a
// retry.
func (s *AccountServiceImpl) SendVerification(ctx context.Context, email string) (domain.AuthOutcome, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.FailureOutcome(msgAccountNotFound), nil
		}
		return domain.AuthOutcome{}, fmt.Errorf("failed to find account: %w", err)
	}

	if account.Active {
		return domain.SuccessOutcome("", account.Email, account.FullName, msgAlreadyVerified), nil
	}

	code := s.otpGen.Generate()
	account.SetVerificationCode(code, time.Now().Add(s.otpTTL))
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return domain.AuthOutcome{}, fmt.Errorf("failed to persist verification code: %w", err)
	}

	if err := s.mailSvc.SendVerificationEmail(account.Email, code); err != nil {
		return domain.FailureOutcome(msgMailFailed), nil
	}

	log.Printf("audit: %v", domain.NewAuditEvent(domain.VerificationSentEvent, account.ID).WithEmail(account.Email))

	return domain.SuccessOutcome("", account.Email, account.FullName, msgVerificationSent), nil
}

// VerifyEmail implements domain.AccountService. Rules are checked in order,
// first match wins. An expired pair is left intact; the caller must request a
// resend explicitly.
func (s *AccountServiceImpl) VerifyEmail(ctx context.Context, email, code string) (domain.AuthOutcome, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.FailureOutcome(msgInvalidEmailOrCode), nil
		}
		return domain.AuthOutcome{}, fmt.Errorf("failed to find account: %w", err)
	}

	if account.Active {
		return domain.SuccessOutcome("", account.Email, account.FullName, msgAlreadyVerified), nil
	}

	if !account.HasVerificationCode() {
		log.Printf("audit: %v", domain.NewAuditEvent(domain.VerificationFailedEvent, account.ID).
			WithEmail(account.Email).WithError(domain.ErrCodeNotFound))
		return domain.FailureOutcome(msgNoVerificationCode), nil
	}

	if time.Now().After(*account.VerificationExpiry) {
		log.Printf("audit: %v", domain.NewAuditEvent(domain.VerificationFailedEvent, account.ID).
			WithEmail(account.Email).WithError(domain.ErrCodeExpired))
		return domain.FailureOutcome(msgVerificationExpired), nil
	}

	if code != *account.VerificationCode {
		log.Printf("audit: %v", domain.NewAuditEvent(domain.VerificationFailedEvent, account.ID).
			WithEmail(account.Email).WithError(domain.ErrCodeInvalid))
		return domain.FailureOutcome(msgInvalidVerification), nil
	}

	account.Active = true
	account.ClearVerificationCode()
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return domain.AuthOutcome{}, fmt.Errorf("failed to activate account: %w", err)
	}

	token, err := s.tokenSvc.Generate(account.Username)
	if err != nil {
		return domain.AuthOutcome{}, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Printf("audit: %v", domain.NewAuditEvent(domain.EmailVerifiedEvent, account.ID).WithEmail(account.Email))

	return domain.SuccessOutcome(token, account.Email, account.FullName, msgEmailVerified), nil
}

// Login implements domain.AccountService. Unknown usernames and wrong
// passwords share one generic message; the unverified branch is intentionally
// specific.
func (s *AccountServiceImpl) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthOutcome, error) {
	account, err := s.accountRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.FailureOutcome(msgInvalidLogin), nil
		}
		return domain.AuthOutcome{}, fmt.Errorf("failed to find account: %w", err)
	}

	if !account.Active {
		log.Printf("audit: %v", domain.NewAuditEvent(domain.LoginFailedEvent, account.ID).
			WithUsername(req.Username).WithError(domain.ErrAccountNotVerified))
		return domain.FailureOutcome(msgNotVerified), nil
	}

	if !s.passwordSvc.Verify(account.PasswordHash, req.Password) {
		log.Printf("audit: %v", domain.NewAuditEvent(domain.LoginFailedEvent, account.ID).
			WithUsername(req.Username).WithError(domain.ErrInvalidCredentials))
		return domain.FailureOutcome(msgInvalidLogin), nil
	}

	token, err := s.tokenSvc.Generate(account.Username)
	if err != nil {
		return domain.AuthOutcome{}, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Printf("audit: %v", domain.NewAuditEvent(domain.LoginEvent, account.ID).WithUsername(account.Username))

	return domain.SuccessOutcome(token, account.Email, account.FullName, msgLoginSuccess), nil
}

// ForgotPassword implements domain.AccountService. The response is identical
// whether or not the email is registered; a mail failure is logged and
// swallowed for the same reason.
func (s *AccountServiceImpl) ForgotPassword(ctx context.Context, email string) (domain.AuthOutcome, error) {
	neutral := domain.SuccessOutcome("", email, "", msgForgotNeutral)

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return neutral, nil
		}
		return domain.AuthOutcome{}, fmt.Errorf("failed to find account: %w", err)
	}

	code := s.otpGen.Generate()
	account.SetResetCode(code, time.Now().Add(s.otpTTL))
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return domain.AuthOutcome{}, fmt.Errorf("failed to persist reset code: %w", err)
	}

	if err := s.mailSvc.SendResetEmail(account.Email, code); err != nil {
		log.Printf("audit: %v", domain.NewAuditEvent(domain.ResetRequestEvent, account.ID).
			WithEmail(account.Email).WithError(err))
		return neutral, nil
	}

	log.Printf("audit: %v", domain.NewAuditEvent(domain.ResetRequestEvent, account.ID).WithEmail(account.Email))

	return neutral, nil
}

// ResetPassword implements domain.AccountService. Same ordered-rule structure
// as VerifyEmail but against the reset pair; success rehashes the password
// and clears only the reset pair. No token is issued, the caller must log in.
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, email, code, newPassword string) (domain.AuthOutcome, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.FailureOutcome(msgInvalidEmailOrCode), nil
		}
		return domain.AuthOutcome{}, fmt.Errorf("failed to find account: %w", err)
	}

	if !account.HasResetCode() {
		return domain.FailureOutcome(msgNoResetCode), nil
	}

	if time.Now().After(*account.ResetExpiry) {
		return domain.FailureOutcome(msgResetExpired), nil
	}

	if code != *account.ResetCode {
		return domain.FailureOutcome(msgInvalidResetCode), nil
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return domain.AuthOutcome{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account.PasswordHash = hashedPassword
	account.ClearResetCode()
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return domain.AuthOutcome{}, fmt.Errorf("failed to persist new password: %w", err)
	}

	log.Printf("audit: %v", domain.NewAuditEvent(domain.ResetCompleteEvent, account.ID).WithEmail(account.Email))

	return domain.SuccessOutcome("", account.Email, account.FullName, msgResetSuccess), nil
}
