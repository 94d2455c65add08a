// Package auth implements the login/logout lifecycle over a fixed demo
// credential table. Credentials are hard-coded by design: the dashboard is a
// demo surface and carries no real authentication backend.
package auth

import (
	"context"
	"errors"
	"log"

	"riskdesk/internal/models"
	"riskdesk/internal/services/session"
	"riskdesk/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the email/password pair does not
// match the demo table. Callers surface it as a notification; session state
// is left unchanged.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles the session lifecycle.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.Identity, string, error)
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	sessions    session.Store
	jwtSecret   string
	credentials map[string]credential
}

type credential struct {
	userID       string
	passwordHash []byte
	role         models.Role
}

// Demo accounts, one per role. All share the password "password".
var demoAccounts = []struct {
	email    string
	password string
	role     models.Role
}{
	{"demo@example.com", "password", models.RoleSuperAdmin},
	{"admin@example.com", "password", models.RoleAdmin},
	{"risk@example.com", "password", models.RoleRiskAnalyst},
	{"kyc@example.com", "password", models.RoleKYCAgent},
	{"viewer@example.com", "password", models.RoleViewer},
}

// NewService creates an auth service backed by the given session store.
// The demo passwords are hashed once at construction.
func NewService(sessions session.Store, jwtSecret string) Service {
	creds := make(map[string]credential, len(demoAccounts))
	for _, acc := range demoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash demo credential for %s: %v", acc.email, err)
		}
		creds[acc.email] = credential{
			userID:       uuid.NewString(),
			passwordHash: hash,
			role:         acc.role,
		}
	}
	return &service{
		sessions:    sessions,
		jwtSecret:   jwtSecret,
		credentials: creds,
	}
}

// Login validates the credentials, builds the identity with its role's
// default permission set, persists the session, and issues a signed token.
func (s *service) Login(ctx context.Context, email, password string) (*models.Identity, string, error) {
	cred, ok := s.credentials[email]
	if !ok {
		log.Printf("login failed: unknown account %s", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(cred.passwordHash, []byte(password)); err != nil {
		log.Printf("login failed: bad password for %s", email)
		return nil, "", ErrInvalidCredentials
	}

	identity := &models.Identity{
		UserID:      cred.userID,
		Email:       email,
		Role:        cred.role,
		Permissions: models.DefaultPermissions(cred.role),
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Put(ctx, sessionID, identity); err != nil {
		// The token alone can rebuild the session, so a store failure is
		// logged rather than failing the login.
		log.Printf("failed to persist session %s: %v", sessionID, err)
	}

	token, err := utils.GenerateSessionToken(s.jwtSecret, sessionID, identity)
	if err != nil {
		return nil, "", err
	}

	return identity, token, nil
}

// Logout clears the stored session. It succeeds even when no session exists.
func (s *service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		log.Printf("failed to delete session %s: %v", sessionID, err)
	}
	return nil
}
