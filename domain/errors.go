package domain

import "errors"

// Account errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already registered")
	ErrAccountNotVerified = errors.New("account not verified")
)

// Code errors
var (
	ErrCodeNotFound = errors.New("no code found")
	ErrCodeExpired  = errors.New("code has expired")
	ErrCodeInvalid  = errors.New("invalid code")
)

// Token errors
var (
	ErrTokenInvalid = errors.New("invalid token")
)

// Dependency errors
var (
	ErrMailDispatch = errors.New("mail dispatch failed")
)
