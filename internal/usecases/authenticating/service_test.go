package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bizmetrics-api/internal/config"
	"github.com/vfg2006/bizmetrics-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	testEmail    = "admin@bizmetrics.io"
	testPassword = "S3nha!forte"
	testSecret   = "segredo-de-teste"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(&config.Config{
		Auth: config.Auth{
			Secret:            testSecret,
			TokenTTL:          time.Hour,
			AdminEmail:        testEmail,
			AdminPasswordHash: string(hash),
		},
	})
}

func TestService_LoginUser(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantCode string
	}{
		{name: "credenciais corretas", email: testEmail, password: testPassword},
		{name: "email com maiúsculas e espaços", email: "  Admin@BizMetrics.io ", password: testPassword},
		{name: "senha errada", email: testEmail, password: "outra", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "email desconhecido", email: "x@y.z", password: testPassword, wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "campos vazios", email: "", password: "", wantErr: ErrMissingRequiredData, wantCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginUser(tt.email, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsCredentialsError(err) || tt.wantErr == ErrMissingRequiredData)

				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantCode, authErr.Code)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, testEmail, claims.AdminEmail)
		})
	}
}

func TestService_LoginUser_DisabledWithoutHash(t *testing.T) {
	service := NewService(&config.Config{Auth: config.Auth{AdminEmail: testEmail, Secret: testSecret}})

	_, err := service.LoginUser(testEmail, testPassword)

	assert.ErrorIs(t, err, ErrLoginDisabled)
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrUserDisabled, authErr.Code)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	service := newTestService(t)
	issuedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issuedAt }

	token, err := service.LoginUser(testEmail, testPassword)
	require.NoError(t, err)

	service.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.True(t, IsAuthorizationError(err))
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	service := newTestService(t)

	t.Run("assinatura com outro segredo", func(t *testing.T) {
		other := newTestService(t)
		other.cfg.Secret = "outro-segredo"

		token, err := other.LoginUser(testEmail, testPassword)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("texto que não é token", func(t *testing.T) {
		_, err := service.ValidateToken("abc.def.ghi")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("algoritmo none", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"admin_email": testEmail})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token de outro administrador", func(t *testing.T) {
		token, err := service.LoginUser(testEmail, testPassword)
		require.NoError(t, err)

		service.cfg.AdminEmail = "novo@bizmetrics.io"
		defer func() { service.cfg.AdminEmail = testEmail }()

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_ValidateToken_RejectsAllTokensWhenLoginDisabled(t *testing.T) {
	service := NewService(&config.Config{Auth: config.Auth{AdminEmail: testEmail, Secret: testSecret}})

	claims := jwt.MapClaims{
		"admin_email": testEmail,
		"iss":         tokenIssuer,
		"exp":         time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = service.ValidateToken(forged)

	assert.ErrorIs(t, err, ErrLoginDisabled)
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrUserDisabled, authErr.Code)
}
