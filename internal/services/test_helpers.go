package services

import (
	"testing"
	"time"

	"github.com/aniruddha1321/WellNest/domain"
	"github.com/aniruddha1321/WellNest/internal/mocks"
)

// createAccountServiceForTest creates an AccountService with mock dependencies
func createAccountServiceForTest(t *testing.T,
	accountRepo domain.AccountRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpGen domain.OTPGenerator,
	mailSvc domain.MailService) domain.AccountService {
	t.Helper()

	if accountRepo == nil {
		accountRepo = mocks.NewMockAccountRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}
	if otpGen == nil {
		otpGen = mocks.NewMockOTPGenerator()
	}
	if mailSvc == nil {
		mailSvc = mocks.NewMockMailService()
	}

	return NewAccountService(accountRepo, passwordSvc, tokenSvc, otpGen, mailSvc, 15*time.Minute)
}

// createUnverifiedAccount creates an account fresh out of signup, holding an
// outstanding verification pair
func createUnverifiedAccount(t *testing.T) *domain.Account {
	t.Helper()

	account := &domain.Account{
		ID:           1,
		FullName:     "Jane Doe",
		Email:        "jane@x.com",
		Username:     "janex",
		PasswordHash: "hashed_Secret1!",
		Active:       false,
	}
	account.SetVerificationCode("123456", time.Now().Add(15*time.Minute))
	return account
}

// createVerifiedAccount creates an activated account with no outstanding pairs
func createVerifiedAccount(t *testing.T) *domain.Account {
	t.Helper()

	return &domain.Account{
		ID:           1,
		FullName:     "Jane Doe",
		Email:        "jane@x.com",
		Username:     "janex",
		PasswordHash: "hashed_Secret1!",
		Active:       true,
	}
}
