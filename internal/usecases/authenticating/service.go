package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/bizmetrics-api/internal/config"
	"github.com/vfg2006/bizmetrics-api/internal/domain"
	"github.com/vfg2006/bizmetrics-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const tokenIssuer = "bizmetrics-api"

type Authenticator interface {
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service autentica o administrador configurado em ADMIN_EMAIL / ADMIN_PASSWORD_HASH
type Service struct {
	cfg config.Auth
	now func() time.Time
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg.Auth,
		now: time.Now,
	}
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	// Sem hash configurado ninguém entra
	if s.cfg.AdminPasswordHash == "" {
		return "", NewAuthError(ErrLoginDisabled, apiErrors.ErrUserDisabled, "ADMIN_PASSWORD_HASH não configurado")
	}

	if handleEmail(email) != handleEmail(s.cfg.AdminEmail) {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	token, err := s.generateJWT(handleEmail(email))
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) generateJWT(email string) (string, error) {
	now := s.now()

	claims := domain.Claims{
		AdminEmail: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// ValidateToken recusa qualquer token enquanto o login estiver desabilitado
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if s.cfg.AdminPasswordHash == "" {
		return nil, NewAuthError(ErrLoginDisabled, apiErrors.ErrUserDisabled, "ADMIN_PASSWORD_HASH não configurado")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.AdminEmail != handleEmail(s.cfg.AdminEmail) {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "token não pertence ao administrador")
	}

	return claims, nil
}
