package domain

import "github.com/golang-jwt/jwt/v5"

// Roles for API clients.
const (
	RoleAdmin   = 1
	RoleAnalyst = 2
)

// APIClient is a credentialed consumer of the API, loaded from configuration
// at process start.
type APIClient struct {
	ID         string
	SecretHash string
	Role       int
	Disabled   bool
}

// Claims is the JWT payload issued on login.
type Claims struct {
	ClientID string `json:"client_id"`
	Role     int    `json:"role"`
	jwt.RegisteredClaims
}
