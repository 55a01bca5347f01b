package services

import "crypto/subtle"

// AuthService guards the browser with HTTP basic auth. The guard is
// disabled unless both a user and a password are configured, which
// keeps the default deployment open.
type AuthService struct {
	user     string
	password string
}

// NewAuthService creates an auth service for the given credentials.
// Empty credentials produce a disabled service.
func NewAuthService(user, password string) *AuthService {
	return &AuthService{user: user, password: password}
}

// Enabled reports whether requests must authenticate.
func (s *AuthService) Enabled() bool {
	return s.user != "" && s.password != ""
}

// Validate checks credentials in constant time.
func (s *AuthService) Validate(user, password string) bool {
	if !s.Enabled() {
		return false
	}
	userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(s.user)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	return userMatch && passwordMatch
}
