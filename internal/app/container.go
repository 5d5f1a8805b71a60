package app

import (
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/aniruddha1321/WellNest/domain"
	"github.com/aniruddha1321/WellNest/internal/config"
	"github.com/aniruddha1321/WellNest/internal/http/handlers"
	"github.com/aniruddha1321/WellNest/internal/infrastructure/auth"
	"github.com/aniruddha1321/WellNest/internal/infrastructure/database"
	"github.com/aniruddha1321/WellNest/internal/infrastructure/notifications"
	"github.com/aniruddha1321/WellNest/internal/infrastructure/repositories"
	"github.com/aniruddha1321/WellNest/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB *gorm.DB

	AccountRepo domain.AccountRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	MailSvc     domain.MailService
	OTPGen      domain.OTPGenerator
	AccountSvc  domain.AccountService

	AccountH *handlers.AccountHandlers
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initServices()
	container.initHandlers()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initServices() {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.TokenTTL)
	c.MailSvc = notifications.NewSMTPService(
		c.Config.MailHost,
		c.Config.MailPort,
		c.Config.MailUsername,
		c.Config.MailPassword,
		c.Config.MailFrom,
		c.Config.FrontendURL,
	)
	c.OTPGen = services.NewOTPGenerator(rand.NewSource(time.Now().UnixNano()))

	c.AccountSvc = services.NewAccountService(
		c.AccountRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPGen,
		c.MailSvc,
		c.Config.OTPTTL,
	)
}

func (c *Container) initHandlers() {
	c.AccountH = handlers.NewAccountHandlers(c.AccountSvc, c.AccountRepo)
}
