package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aniruddha1321/WellNest/domain"
	"github.com/aniruddha1321/WellNest/internal/mocks"
	"github.com/aniruddha1321/WellNest/internal/observability/metrics"
)

func TestMain(m *testing.M) {
	// The handlers increment curried vecs; registration binds the service label.
	metrics.MustRegister("accountsvc-test")
	os.Exit(m.Run())
}

func setupTestRouter(accountSvc domain.AccountService, accountRepo domain.AccountRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAccountHandlers(accountSvc, accountRepo)
	r := gin.New()
	auth := r.Group("/api/auth")
	auth.GET("/test", h.Test)
	auth.POST("/signup", h.Signup)
	auth.POST("/send-verification", h.SendVerification)
	auth.GET("/send-verification", h.SendVerification)
	auth.POST("/verify-email", h.VerifyEmail)
	auth.GET("/verify-email", h.VerifyEmail)
	auth.POST("/login", h.Login)
	auth.POST("/forgot-password", h.ForgotPassword)
	auth.POST("/reset-password", h.ResetPassword)
	return r
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) AuthResponse {
	t.Helper()

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAccountHandlers_Signup(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(svc *mocks.MockAccountService)
		expectedStatus int
		expectedToken  string
	}{
		{
			name: "successful signup",
			body: SignupRequest{
				FullName: "Jane Doe",
				Email:    "jane@x.com",
				Username: "janex",
				Password: "Secret1!",
			},
			setupMocks:     func(svc *mocks.MockAccountService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing required fields",
			body: SignupRequest{
				Email: "jane@x.com",
			},
			setupMocks:     func(svc *mocks.MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "malformed email",
			body: SignupRequest{
				FullName: "Jane Doe",
				Email:    "not-an-email",
				Username: "janex",
				Password: "Secret1!",
			},
			setupMocks:     func(svc *mocks.MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "conflict outcome maps to 400",
			body: SignupRequest{
				FullName: "Jane Doe",
				Email:    "jane@x.com",
				Username: "janex",
				Password: "Secret1!",
			},
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.SignupFunc = func(ctx context.Context, req domain.SignupRequest) (domain.AuthOutcome, error) {
					return domain.FailureOutcome("Email is already registered"), nil
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store failure maps to 500",
			body: SignupRequest{
				FullName: "Jane Doe",
				Email:    "jane@x.com",
				Username: "janex",
				Password: "Secret1!",
			},
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.SignupFunc = func(ctx context.Context, req domain.SignupRequest) (domain.AuthOutcome, error) {
					return domain.AuthOutcome{}, context.DeadlineExceeded
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService()
			tt.setupMocks(svc)
			r := setupTestRouter(svc, mocks.NewMockAccountRepository())

			w := performJSON(t, r, http.MethodPost, "/api/auth/signup", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.NotEmpty(t, resp.Message)
			assert.Empty(t, resp.Token, "signup never returns a token")
		})
	}
}

func TestAccountHandlers_SendVerification(t *testing.T) {
	svc := mocks.NewMockAccountService()
	r := setupTestRouter(svc, mocks.NewMockAccountRepository())

	t.Run("missing email", func(t *testing.T) {
		w := performJSON(t, r, http.MethodPost, "/api/auth/send-verification", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("dispatches a code", func(t *testing.T) {
		w := performJSON(t, r, http.MethodPost, "/api/auth/send-verification?email=jane@x.com", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("accepts GET as well", func(t *testing.T) {
		w := performJSON(t, r, http.MethodGet, "/api/auth/send-verification?email=jane@x.com", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown email maps to 400", func(t *testing.T) {
		svc.SendVerificationFunc = func(ctx context.Context, email string) (domain.AuthOutcome, error) {
			return domain.FailureOutcome("Account not found"), nil
		}
		defer func() { svc.SendVerificationFunc = nil }()

		w := performJSON(t, r, http.MethodPost, "/api/auth/send-verification?email=ghost@x.com", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountHandlers_VerifyEmail(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(svc *mocks.MockAccountService)
		expectedStatus int
		wantToken      bool
	}{
		{
			name:           "missing parameters",
			path:           "/api/auth/verify-email?email=jane@x.com",
			setupMocks:     func(svc *mocks.MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "valid code yields a token",
			path:           "/api/auth/verify-email?email=jane@x.com&code=123456",
			setupMocks:     func(svc *mocks.MockAccountService) {},
			expectedStatus: http.StatusOK,
			wantToken:      true,
		},
		{
			name: "wrong code maps to 400",
			path: "/api/auth/verify-email?email=jane@x.com&code=999999",
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.VerifyEmailFunc = func(ctx context.Context, email, code string) (domain.AuthOutcome, error) {
					return domain.FailureOutcome("Invalid verification code"), nil
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService()
			tt.setupMocks(svc)
			r := setupTestRouter(svc, mocks.NewMockAccountRepository())

			w := performJSON(t, r, http.MethodPost, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeResponse(t, w)
			if tt.wantToken {
				assert.NotEmpty(t, resp.Token)
			} else {
				assert.Empty(t, resp.Token)
			}
		})
	}
}

func TestAccountHandlers_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(svc *mocks.MockAccountService)
		expectedStatus int
		wantToken      bool
	}{
		{
			name:           "missing credentials",
			body:           LoginRequest{Username: "janex"},
			setupMocks:     func(svc *mocks.MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "valid credentials",
			body: LoginRequest{Username: "janex", Password: "Secret1!"},
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.LoginFunc = func(ctx context.Context, req domain.LoginRequest) (domain.AuthOutcome, error) {
					return domain.SuccessOutcome("token_for_janex", "jane@x.com", "Jane Doe", "Login successful"), nil
				}
			},
			expectedStatus: http.StatusOK,
			wantToken:      true,
		},
		{
			name: "refused credentials map to 401",
			body: LoginRequest{Username: "janex", Password: "WrongPW"},
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.LoginFunc = func(ctx context.Context, req domain.LoginRequest) (domain.AuthOutcome, error) {
					return domain.FailureOutcome("Invalid username or password"), nil
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unverified account maps to 401",
			body: LoginRequest{Username: "janex", Password: "Secret1!"},
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.LoginFunc = func(ctx context.Context, req domain.LoginRequest) (domain.AuthOutcome, error) {
					return domain.FailureOutcome("Account not verified. Please verify your email first."), nil
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService()
			tt.setupMocks(svc)
			r := setupTestRouter(svc, mocks.NewMockAccountRepository())

			w := performJSON(t, r, http.MethodPost, "/api/auth/login", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeResponse(t, w)
			if tt.wantToken {
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, "jane@x.com", resp.Email)
				assert.Equal(t, "Jane Doe", resp.FullName)
			} else {
				assert.Empty(t, resp.Token)
			}
		})
	}
}

// TestAccountHandlers_ForgotPassword_TranscriptsMatch checks that a caller
// probing for registered emails sees identical responses either way.
func TestAccountHandlers_ForgotPassword_TranscriptsMatch(t *testing.T) {
	neutral := domain.SuccessOutcome("", "", "", "If this email exists, a password reset code has been sent")

	known := mocks.NewMockAccountService()
	known.ForgotPasswordFunc = func(ctx context.Context, email string) (domain.AuthOutcome, error) {
		out := neutral
		out.Email = email
		return out, nil
	}
	unknown := mocks.NewMockAccountService()
	unknown.ForgotPasswordFunc = known.ForgotPasswordFunc

	wKnown := performJSON(t, setupTestRouter(known, mocks.NewMockAccountRepository()),
		http.MethodPost, "/api/auth/forgot-password?email=jane@x.com", nil)
	wUnknown := performJSON(t, setupTestRouter(unknown, mocks.NewMockAccountRepository()),
		http.MethodPost, "/api/auth/forgot-password?email=ghost@x.com", nil)

	assert.Equal(t, http.StatusOK, wKnown.Code)
	assert.Equal(t, wKnown.Code, wUnknown.Code)

	// Bodies must be identical except the echoed email.
	respKnown := decodeResponse(t, wKnown)
	respUnknown := decodeResponse(t, wUnknown)
	respKnown.Email, respUnknown.Email = "", ""
	assert.Equal(t, respKnown, respUnknown)
}

func TestAccountHandlers_ResetPassword(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(svc *mocks.MockAccountService)
		expectedStatus int
	}{
		{
			name:           "missing parameters",
			path:           "/api/auth/reset-password?email=jane@x.com&code=123456",
			setupMocks:     func(svc *mocks.MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "successful reset",
			path:           "/api/auth/reset-password?email=jane@x.com&code=123456&newPassword=NewSecret2!",
			setupMocks:     func(svc *mocks.MockAccountService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name: "refused code maps to 400",
			path: "/api/auth/reset-password?email=jane@x.com&code=000000&newPassword=NewSecret2!",
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.ResetPasswordFunc = func(ctx context.Context, email, code, newPassword string) (domain.AuthOutcome, error) {
					return domain.FailureOutcome("Invalid reset code"), nil
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService()
			tt.setupMocks(svc)
			r := setupTestRouter(svc, mocks.NewMockAccountRepository())

			w := performJSON(t, r, http.MethodPost, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.Empty(t, resp.Token, "reset never returns a token")
		})
	}
}

func TestAccountHandlers_Test(t *testing.T) {
	r := setupTestRouter(mocks.NewMockAccountService(), mocks.NewMockAccountRepository())

	w := performJSON(t, r, http.MethodGet, "/api/auth/test", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Auth API is working!", w.Body.String())
}

func TestAccountHandlers_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := mocks.NewMockAccountRepository()
	repo.FindByUsernameFunc = func(ctx context.Context, username string) (*domain.Account, error) {
		if username == "janex" {
			return &domain.Account{
				FullName: "Jane Doe",
				Email:    "jane@x.com",
				Username: "janex",
				Active:   true,
			}, nil
		}
		return nil, domain.ErrAccountNotFound
	}
	h := NewAccountHandlers(mocks.NewMockAccountService(), repo)

	t.Run("authenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		c.Set("username", "janex")

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "jane@x.com", body["email"])
		assert.Equal(t, "Jane Doe", body["fullName"])
		assert.Equal(t, true, body["active"])
	})

	t.Run("no identity in context", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)

		h.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token subject no longer exists", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		c.Set("username", "ghost")

		h.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
