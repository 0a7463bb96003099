package identity

import (
	"errors"
	"strings"

	"github.com/devshelf/devshelf/internal/models"
	"github.com/devshelf/devshelf/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMissingFields is returned when email or password is empty at registration.
	ErrMissingFields = errors.New("email and password are required")
	// ErrEmailTaken is returned when the normalized email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on any login failure. It deliberately does
	// not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service owns user records and credential verification.
type Service struct {
	users repository.UserRepository
}

func NewService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

// NormalizeEmail lowercases and trims an email address so uniqueness and lookups
// are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register persists a new user with a bcrypt hash of the supplied password.
// The plaintext is not retained.
func (s *Service) Register(fullName, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)

	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     strings.TrimSpace(fullName),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(user); err != nil {
		// Unique-index backstop for registrations racing past the pre-check.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Authenticate verifies credentials against the stored bcrypt hash.
func (s *Service) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Lookup resolves a user id to its record. Used by the session middleware to turn
// verified token claims into the current identity.
func (s *Service) Lookup(id uint) (*models.User, error) {
	return s.users.GetByID(id)
}

// UpdateProfile overwrites the display name of the acting user.
func (s *Service) UpdateProfile(user *models.User, fullName string) error {
	user.FullName = strings.TrimSpace(fullName)
	return s.users.Update(user)
}
