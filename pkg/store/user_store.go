package store

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/phoopyae1/OSS/pkg/auth"
	"github.com/phoopyae1/OSS/pkg/types"
)

// FindUserByUsername fetches a user account by its unique username.
func (s *Store) FindUserByUsername(username string) (*types.User, error) {
	var user types.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// CreateUser persists a new user account. The password must already be
// hashed.
func (s *Store) CreateUser(user *types.User) error {
	return s.db.Create(user).Error
}

// EnsureAdmin seeds the default admin account when no user with that username
// exists yet, so a fresh deployment is immediately usable.
func (s *Store) EnsureAdmin(username, password string, log *logrus.Logger) error {
	var count int64
	if err := s.db.Model(&types.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := types.User{
		Username: username,
		Password: hash,
		Role:     types.RoleAdmin,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.WithField("username", username).Info("Seeded default admin user")
	return nil
}
