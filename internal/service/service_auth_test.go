package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-lightpack/internal/config"
	"github.com/MKhiriev/go-lightpack/internal/logger"
	"github.com/MKhiriev/go-lightpack/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, password string) AuthService {
	t.Helper()

	cfg := config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "go-lightpack",
		TokenDuration: time.Hour,
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		cfg.AdminPasswordHash = string(hash)
	}

	return NewAuthService(cfg, logger.Nop())
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t, "correct horse")

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "correct password", password: "correct horse"},
		{name: "wrong password", password: "battery staple", wantErr: ErrWrongPassword},
		{name: "empty password", password: "", wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Login(context.Background(), tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token.SignedString)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token.SignedString)
			assert.Equal(t, AdminSubject, token.Subject)
		})
	}
}

func TestAuthService_Login_Disabled(t *testing.T) {
	svc := newTestAuthService(t, "")

	assert.False(t, svc.Enabled())
	_, err := svc.Login(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestAuthService_Login_MissingSignKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(config.App{
		AdminPasswordHash: string(hash),
		TokenIssuer:       "go-lightpack",
		TokenDuration:     time.Hour,
	}, logger.Nop())

	_, err = svc.Login(context.Background(), "pw")

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken(t *testing.T) {
	svc := newTestAuthService(t, "pw")

	issued, err := svc.Login(context.Background(), "pw")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, parsed.Subject)

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ParseToken(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		foreign, err := utils.GenerateJWTToken("someone-else", AdminSubject, time.Hour, "sign-key")
		require.NoError(t, err)

		_, err = svc.ParseToken(context.Background(), foreign.SignedString)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := utils.GenerateJWTToken("go-lightpack", AdminSubject, -time.Minute, "sign-key")
		require.NoError(t, err)

		_, err = svc.ParseToken(context.Background(), expired.SignedString)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})
}
