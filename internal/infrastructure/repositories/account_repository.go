package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/aniruddha1321/WellNest/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID                 uint    `gorm:"primaryKey"`
	FullName           string  `gorm:"size:255"`
	Email              string  `gorm:"uniqueIndex;size:255"`
	Username           string  `gorm:"uniqueIndex;size:64"`
	PasswordHash       string  `gorm:"column:password"`
	PhoneNumber        string  `gorm:"size:32"`
	Active             bool    `gorm:"index"`
	VerificationCode   *string `gorm:"size:6"`
	VerificationExpiry *time.Time
	ResetCode          *string `gorm:"size:6"`
	ResetExpiry        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository. A unique-index violation on
// email or username is mapped to the conflict sentinel; the index is the
// authoritative guard, the existence pre-checks are only a fast path.
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAccountExists
		}
		return err
	}
	account.ID = dbAccount.ID
	account.CreatedAt = dbAccount.CreatedAt
	account.UpdatedAt = dbAccount.UpdatedAt
	return nil
}

// FindByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByUsername implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// ExistsByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBAccount{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ExistsByUsername implements domain.AccountRepository
func (r *AccountRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBAccount{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// Update implements domain.AccountRepository. Save writes all columns so
// cleared code/expiry pairs are persisted as NULL.
func (r *AccountRepositoryImpl) Update(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	dbAccount.CreatedAt = account.CreatedAt
	if err := r.db.WithContext(ctx).Save(dbAccount).Error; err != nil {
		return err
	}
	account.UpdatedAt = dbAccount.UpdatedAt
	return nil
}

// Delete implements domain.AccountRepository. Used to roll back a signup
// whose verification mail could not be dispatched.
func (r *AccountRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBAccount{}, id).Error
}

// domainToDB converts domain account to database account
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:                 account.ID,
		FullName:           account.FullName,
		Email:              account.Email,
		Username:           account.Username,
		PasswordHash:       account.PasswordHash,
		PhoneNumber:        account.PhoneNumber,
		Active:             account.Active,
		VerificationCode:   account.VerificationCode,
		VerificationExpiry: account.VerificationExpiry,
		ResetCode:          account.ResetCode,
		ResetExpiry:        account.ResetExpiry,
	}
}

// dbToDomain converts database account to domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:                 dbAccount.ID,
		FullName:           dbAccount.FullName,
		Email:              dbAccount.Email,
		Username:           dbAccount.Username,
		PasswordHash:       dbAccount.PasswordHash,
		PhoneNumber:        dbAccount.PhoneNumber,
		Active:             dbAccount.Active,
		VerificationCode:   dbAccount.VerificationCode,
		VerificationExpiry: dbAccount.VerificationExpiry,
		ResetCode:          dbAccount.ResetCode,
		ResetExpiry:        dbAccount.ResetExpiry,
		CreatedAt:          dbAccount.CreatedAt,
		UpdatedAt:          dbAccount.UpdatedAt,
	}
}
