package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims issued at login. The identity is embedded
// whole so a valid token is sufficient to rebuild the session after a restart
// without re-validating credentials.
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID   string   `json:"session_id"`
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
}

// Identity reconstructs the identity carried in the claims.
func (c *SessionClaims) Identity() *Identity {
	return &Identity{
		UserID:      c.UserID,
		Email:       c.Email,
		Role:        c.Role,
		Permissions: c.Permissions,
	}
}
