package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aniruddha1321/WellNest/domain"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", "wellnest-test", time.Hour)

	token, err := svc.Generate("janex")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "janex", subject)
}

func TestJWTService_Validate_Failures(t *testing.T) {
	svc := NewJWTService("test-secret", "wellnest-test", time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "empty token",
			token: func(t *testing.T) string {
				return ""
			},
		},
		{
			name: "malformed token",
			token: func(t *testing.T) string {
				return "not.a.jwt"
			},
		},
		{
			name: "wrong signing key",
			token: func(t *testing.T) string {
				other := NewJWTService("other-secret", "wellnest-test", time.Hour)
				tok, err := other.Generate("janex")
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := NewJWTService("test-secret", "wellnest-test", -time.Minute)
				tok, err := expired.Generate("janex")
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "tampered token",
			token: func(t *testing.T) string {
				tok, err := svc.Generate("janex")
				require.NoError(t, err)
				return tok[:len(tok)-2] + "xx"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := svc.Validate(tt.token(t))
			// Every failure mode collapses into the same uniform error.
			assert.ErrorIs(t, err, domain.ErrTokenInvalid)
			assert.Empty(t, subject)
		})
	}
}

func TestJWTService_SubjectIsUsername(t *testing.T) {
	svc := NewJWTService("test-secret", "wellnest-test", time.Hour)

	for _, username := range []string{"janex", "user_2", "a"} {
		token, err := svc.Generate(username)
		require.NoError(t, err)

		subject, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, username, subject)
	}
}
