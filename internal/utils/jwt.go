package utils

import (
	"errors"
	"time"

	"riskdesk/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Session token lifetime. The dashboard trusts an unexpired token across
// restarts, so this is also the maximum trust-on-reload window.
const sessionTokenTTL = 12 * time.Hour

// GenerateSessionToken signs a JWT carrying the full identity for the given
// session ID.
func GenerateSessionToken(secret string, sessionID string, identity *models.Identity) (string, error) {
	if secret == "" {
		return "", errors.New("JWT_SECRET not configured")
	}

	now := time.Now()
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "riskdesk-api",
			Subject:   identity.UserID,
		},
		SessionID:   sessionID,
		UserID:      identity.UserID,
		Email:       identity.Email,
		Role:        identity.Role,
		Permissions: identity.Permissions,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken parses and validates a session token string.
func ParseSessionToken(secret, tokenStr string) (*models.SessionClaims, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
