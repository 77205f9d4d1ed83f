package auth

import (
	"fmt"

	"github.com/fiscus-app/fiscus/internal/platform/httpx"
)

// Credential is a stored user account record. The password hash is opaque
// and never leaves this package in plaintext-comparable form.
type Credential struct {
	Username         string
	PasswordHash     string
	Role             string
	TwoFactorEnabled bool
}

// Roles accepted at registration.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ErrInvalidCredentials indicates login failure. Unknown usernames and wrong
// passwords are deliberately indistinguishable.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", httpx.ErrUnauthorized)
