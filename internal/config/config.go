package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type OTPConfig struct {
	TTL string `yaml:"ttl"`
}

type MailConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	From        string `yaml:"from"`
	FrontendURL string `yaml:"frontend_url"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Mail     MailConfig     `yaml:"mail"`
}

type Config struct {
	Port         string
	GinMode      string
	DSN          string
	JWTSecret    string
	JWTIssuer    string
	TokenTTL     time.Duration
	OTPTTL       time.Duration
	MailHost     string
	MailPort     int
	MailUsername string
	MailPassword string
	MailFrom     string
	FrontendURL  string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for the
// values that differ per deployment (DSN, JWT secret, mail credentials).
func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	return &Config{
		Port:         fmt.Sprintf("%d", configFile.App.Port),
		GinMode:      configFile.App.GinMode,
		DSN:          env("DATABASE_DSN", configFile.Database.DSN),
		JWTSecret:    env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:    configFile.JWT.Issuer,
		TokenTTL:     tokenTTL,
		OTPTTL:       otpTTL,
		MailHost:     env("MAIL_HOST", configFile.Mail.Host),
		MailPort:     configFile.Mail.Port,
		MailUsername: env("MAIL_USERNAME", configFile.Mail.Username),
		MailPassword: env("MAIL_PASSWORD", configFile.Mail.Password),
		MailFrom:     env("MAIL_FROM", configFile.Mail.From),
		FrontendURL:  env("FRONTEND_URL", configFile.Mail.FrontendURL),
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
