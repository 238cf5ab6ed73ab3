package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const sessionPrefix = "admin-session:"

// CookieName is the admin session cookie.
const CookieName = "admin_session"

// Service issues and verifies the single-admin session token. The token is
// a keyed hash of the admin username, so it stays valid until the secret or
// username changes.
type Service struct {
	username     string
	password     string
	passwordHash string
	secret       []byte
}

func NewService(username, password, passwordHash, secret string) *Service {
	return &Service{
		username:     username,
		password:     password,
		passwordHash: passwordHash,
		secret:       []byte(secret),
	}
}

// SessionToken derives the session token for the configured admin.
func (s *Service) SessionToken() string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(sessionPrefix + s.username))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyToken checks a presented cookie value in constant time.
func (s *Service) VerifyToken(token string) bool {
	if token == "" {
		return false
	}
	expected, err := hex.DecodeString(s.SessionToken())
	if err != nil {
		return false
	}
	presented, err := hex.DecodeString(token)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, presented)
}

// VerifyCredentials checks the login form. A bcrypt hash takes precedence
// over the plaintext password when both are configured.
func (s *Service) VerifyCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	var passOK bool
	if s.passwordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	}
	return userOK && passOK
}

// SanitizeAdminRedirect keeps post-login redirects inside the admin area.
// The value is percent-decoded first, since login forms pass it through a
// query string. Anything that is not a same-origin /admin path falls back
// to the dashboard, and a bare /admin is promoted to it.
func SanitizeAdminRedirect(raw string) string {
	const dashboard = "/admin/dashboard"

	decoded, err := url.PathUnescape(strings.TrimSpace(raw))
	if err != nil {
		return dashboard
	}
	if decoded == "" || strings.Contains(decoded, "\\") || strings.HasPrefix(decoded, "//") {
		return dashboard
	}
	if decoded == "/admin" || decoded == "/admin/" {
		return dashboard
	}
	if !strings.HasPrefix(decoded, "/admin/") {
		return dashboard
	}
	return decoded
}
