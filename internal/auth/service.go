package auth

import (
	"fmt"
)

// Repository defines credential storage used by the Service.
type Repository interface {
	Insert(cred Credential) error
	Lookup(username string) (Credential, error)
}

// Service wraps registration and authentication business rules.
type Service struct {
	repo   Repository
	issuer *Issuer

	// dummyHash absorbs a bcrypt comparison when the username is unknown so
	// login timing does not reveal whether an account exists.
	dummyHash string
}

// NewService constructs a new Service.
func NewService(repo Repository, issuer *Issuer) *Service {
	dummy, _ := HashPassword("not-a-real-password")
	return &Service{repo: repo, issuer: issuer, dummyHash: dummy}
}

// Register hashes the password and stores a new credential record with the
// second factor disabled.
func (s *Service) Register(username, password, role string) error {
	digest, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Insert(Credential{
		Username:     username,
		PasswordHash: digest,
		Role:         role,
	})
}

// Login validates credentials and issues a signed access token.
func (s *Service) Login(username, password string) (string, error) {
	cred, err := s.repo.Lookup(username)
	if err != nil {
		VerifyPassword(password, s.dummyHash)
		return "", ErrInvalidCredentials
	}
	if !VerifyPassword(password, cred.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.issuer.Issue(cred.Username, cred.Role)
}
