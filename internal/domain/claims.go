package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Papéis emitidos pelo serviço de autenticação hospedado
const (
	RoleAuthenticated = "authenticated"
	RoleServiceRole   = "service_role"
)

// Claims representa o token emitido pelo serviço de autenticação hospedado
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID retorna o identificador do usuário (claim sub)
func (c *Claims) UserID() string {
	return c.Subject
}
