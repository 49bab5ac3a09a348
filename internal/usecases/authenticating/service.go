package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kenazlabs/kenaz-analytics-api/internal/config"
	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/apiErrors"
)

// Authenticator issues and validates API tokens for configured clients.
type Authenticator interface {
	Login(clientID, clientSecret string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg     *config.Config
	clients map[string]domain.APIClient
}

// NewService indexes the configured API clients. Credentials are injected at
// process start; nothing here reads the environment directly.
func NewService(cfg *config.Config) Authenticator {
	clients := make(map[string]domain.APIClient, len(cfg.Clients))
	for _, client := range cfg.Clients {
		clients[client.ID] = client
	}

	return &Service{
		cfg:     cfg,
		clients: clients,
	}
}

// Login exchanges client credentials for a signed JWT.
func (s *Service) Login(clientID, clientSecret string) (string, error) {
	if clientID == "" || clientSecret == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "client_id and client_secret are required")
	}

	client, ok := s.clients[clientID]
	if !ok {
		return "", NewAuthError(ErrClientNotFound, apiErrors.ErrInvalidCredentials, "unknown client")
	}

	if client.Disabled {
		return "", NewAuthError(ErrClientDisabled, apiErrors.ErrClientDisabled, "client is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.SecretHash), []byte(clientSecret)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "wrong client secret")
	}

	token, err := s.generateJWT(client)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "could not sign token")
	}

	return token, nil
}

func (s *Service) generateJWT(client domain.APIClient) (string, error) {
	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour

	claims := domain.Claims{
		ClientID: client.ID,
		Role:     client.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

// ValidateToken parses and verifies a bearer token.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
