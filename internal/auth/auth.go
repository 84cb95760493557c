// Package auth issues and verifies the admin bearer tokens guarding the
// dashboard endpoints. Tokens are HS256 JWTs signed with a shared secret;
// there are no user accounts, only the single admin credential.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/huntlabs/treasurehunt/internal/common/clock"
)

// DefaultTokenTTL is how long an issued admin token stays valid
const DefaultTokenTTL = 24 * time.Hour

// AuthError is a typed error for authentication failures
type AuthError string

func (e AuthError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when the config is nil
	ErrNilConfig = AuthError("config cannot be nil")

	// ErrMissingSecret is returned when no signing secret is configured
	ErrMissingSecret = AuthError("signing secret cannot be empty")

	// ErrMissingPassword is returned when no admin password is configured
	ErrMissingPassword = AuthError("admin password cannot be empty")

	// ErrInvalidCredentials is returned when the supplied password is wrong
	ErrInvalidCredentials = AuthError("invalid credentials")

	// ErrInvalidToken is returned when a token fails verification
	ErrInvalidToken = AuthError("invalid or expired token")
)

// Config holds configuration for the admin authenticator
type Config struct {
	// Secret signs and verifies tokens
	Secret string

	// AdminPassword is the single credential accepted by IssueToken
	AdminPassword string

	// TokenTTL is the issued token lifetime; DefaultTokenTTL when zero
	TokenTTL time.Duration

	// Clock drives issue and expiry timestamps
	Clock clock.Clock
}

// AdminClaims is the claim set carried by issued tokens
type AdminClaims struct {
	// Role is always "admin"; checked on verification
	Role string `json:"role"`

	jwt.RegisteredClaims
}

// Authenticator issues and verifies admin tokens
type Authenticator struct {
	secret        []byte
	adminPassword string
	tokenTTL      time.Duration
	clock         clock.Clock
}

// New creates a new admin authenticator
func New(cfg *Config) (*Authenticator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.AdminPassword == "" {
		return nil, ErrMissingPassword
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	tokenTTL := cfg.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}

	return &Authenticator{
		secret:        []byte(cfg.Secret),
		adminPassword: cfg.AdminPassword,
		tokenTTL:      tokenTTL,
		clock:         cfg.Clock,
	}, nil
}

// IssueToken exchanges the admin password for a signed bearer token
func (a *Authenticator) IssueToken(password string) (string, error) {
	if password != a.adminPassword {
		return "", ErrInvalidCredentials
	}

	now := a.clock.Now()
	claims := AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// VerifyToken checks a bearer token's signature, expiry and role
func (a *Authenticator) VerifyToken(tokenString string) error {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.clock.Now))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	if claims.Role != "admin" {
		return ErrInvalidToken
	}

	return nil
}

// Middleware rejects requests that do not carry a valid admin token. The
// token rides in the Authorization header as a bearer token, or in a "token"
// query parameter for clients that cannot set headers.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			http.Error(w, "missing authorization token", http.StatusUnauthorized)
			return
		}

		if err := a.VerifyToken(token); err != nil {
			http.Error(w, "invalid or expired token", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// TokenFromRequest extracts a bearer token from the Authorization header or
// the "token" query parameter
func TokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return r.URL.Query().Get("token")
}
