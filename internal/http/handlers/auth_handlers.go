package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniruddha1321/WellNest/domain"
	"github.com/aniruddha1321/WellNest/internal/observability/metrics"
)

// AccountHandlers handles account lifecycle HTTP requests
type AccountHandlers struct {
	accountSvc  domain.AccountService
	accountRepo domain.AccountRepository
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(accountSvc domain.AccountService, accountRepo domain.AccountRepository) *AccountHandlers {
	return &AccountHandlers{
		accountSvc:  accountSvc,
		accountRepo: accountRepo,
	}
}

// SignupRequest represents the registration request body
type SignupRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the wire shape shared by every auth endpoint
type AuthResponse struct {
	Token    string `json:"token,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Message  string `json:"message"`
}

func toResponse(outcome domain.AuthOutcome) AuthResponse {
	return AuthResponse{
		Token:    outcome.Token,
		Email:    outcome.Email,
		FullName: outcome.FullName,
		Message:  outcome.Message,
	}
}

// Signup handles account registration
func (h *AccountHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, AuthResponse{Message: err.Error()})
		return
	}

	outcome, err := h.accountSvc.Signup(c.Request.Context(), domain.SignupRequest{
		FullName:    req.FullName,
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		log.Printf("signup failed: %v", err)
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, AuthResponse{Message: "Registration failed. Please try again."})
		return
	}

	if !outcome.Success {
		metrics.SignupsTotal.WithLabelValues("refused").Inc()
		c.JSON(http.StatusBadRequest, toResponse(outcome))
		return
	}
	metrics.SignupsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, toResponse(outcome))
}

// SendVerification issues a fresh verification code for an email
func (h *AccountHandlers) SendVerification(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, AuthResponse{Message: "email is required"})
		return
	}

	outcome, err := h.accountSvc.SendVerification(c.Request.Context(), email)
	if err != nil {
		log.Printf("send verification failed: %v", err)
		c.JSON(http.StatusInternalServerError, AuthResponse{Message: "Could not send verification email. Please try again."})
		return
	}

	if !outcome.Success {
		c.JSON(http.StatusBadRequest, toResponse(outcome))
		return
	}
	c.JSON(http.StatusOK, toResponse(outcome))
}

// VerifyEmail checks a submitted verification code
func (h *AccountHandlers) VerifyEmail(c *gin.Context) {
	email := c.Query("email")
	code := c.Query("code")
	if email == "" || code == "" {
		c.JSON(http.StatusBadRequest, AuthResponse{Message: "email and code are required"})
		return
	}

	outcome, err := h.accountSvc.VerifyEmail(c.Request.Context(), email, code)
	if err != nil {
		log.Printf("verify email failed: %v", err)
		metrics.VerificationsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, AuthResponse{Message: "Verification failed. Please try again."})
		return
	}

	if !outcome.Success {
		metrics.VerificationsTotal.WithLabelValues("refused").Inc()
		c.JSON(http.StatusBadRequest, toResponse(outcome))
		return
	}
	metrics.VerificationsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, toResponse(outcome))
}

// Login handles credential login
func (h *AccountHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, AuthResponse{Message: err.Error()})
		return
	}

	outcome, err := h.accountSvc.Login(c.Request.Context(), domain.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		log.Printf("login failed: %v", err)
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, AuthResponse{Message: "Login failed. Please try again."})
		return
	}

	if !outcome.Success {
		metrics.LoginsTotal.WithLabelValues("refused").Inc()
		c.JSON(http.StatusUnauthorized, toResponse(outcome))
		return
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, toResponse(outcome))
}

// ForgotPassword issues a password reset code. The response is the same
// whether or not the email is registered.
func (h *AccountHandlers) ForgotPassword(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, AuthResponse{Message: "email is required"})
		return
	}

	outcome, err := h.accountSvc.ForgotPassword(c.Request.Context(), email)
	if err != nil {
		log.Printf("forgot password failed: %v", err)
		c.JSON(http.StatusInternalServerError, AuthResponse{Message: "Request failed. Please try again."})
		return
	}

	c.JSON(http.StatusOK, toResponse(outcome))
}

// ResetPassword checks a reset code and swaps the password
func (h *AccountHandlers) ResetPassword(c *gin.Context) {
	email := c.Query("email")
	code := c.Query("code")
	newPassword := c.Query("newPassword")
	if email == "" || code == "" || newPassword == "" {
		c.JSON(http.StatusBadRequest, AuthResponse{Message: "email, code and newPassword are required"})
		return
	}

	outcome, err := h.accountSvc.ResetPassword(c.Request.Context(), email, code, newPassword)
	if err != nil {
		log.Printf("reset password failed: %v", err)
		metrics.PasswordResetsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, AuthResponse{Message: "Reset failed. Please try again."})
		return
	}

	if !outcome.Success {
		metrics.PasswordResetsTotal.WithLabelValues("refused").Inc()
		c.JSON(http.StatusBadRequest, toResponse(outcome))
		return
	}
	metrics.PasswordResetsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, toResponse(outcome))
}

// Test is a liveness probe for the auth surface
func (h *AccountHandlers) Test(c *gin.Context) {
	c.String(http.StatusOK, "Auth API is working!")
}

// Me returns the identity behind the bearer token
func (h *AccountHandlers) Me(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, AuthResponse{Message: "Authentication required"})
		return
	}

	account, err := h.accountRepo.FindByUsername(c.Request.Context(), username.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, AuthResponse{Message: "Account not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":    account.Email,
		"fullName": account.FullName,
		"username": account.Username,
		"active":   account.Active,
	})
}
