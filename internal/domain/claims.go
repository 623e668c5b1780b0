package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações do administrador gravadas no token JWT
type Claims struct {
	AdminEmail string `json:"admin_email"`
	jwt.RegisteredClaims
}
