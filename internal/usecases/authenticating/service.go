// Package authenticating valida os tokens emitidos pelo serviço de autenticação hospedado
package authenticating

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/cash-position-api/internal/config"
	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
)

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg config.Auth
}

func NewService(cfg config.Auth) Authenticator {
	return &Service{cfg: cfg}
}

// ValidateToken verifica a assinatura HS256 e a validade do token.
// Tokens sem papel recebem o papel padrão de usuário autenticado.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, NewAuthError(ErrEmptyToken, apiErrors.ErrInvalidToken, "")
	}
	if s.cfg.Secret == "" {
		return nil, NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedSigning, token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if claims.Role == "" {
		claims.Role = domain.RoleAuthenticated
	}

	return claims, nil
}
