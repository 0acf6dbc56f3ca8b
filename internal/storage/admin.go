package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/verdantmarket/farmstand/internal/repository"
)

// InitAdmin makes sure the configured admin account exists. Every API
// route sits behind basic auth, so a fresh deployment needs one seeded
// user to get started.
func InitAdmin(ctx context.Context, users UserRepository, username, password string) error {
	if username == "" || password == "" {
		return errors.New("admin credentials are not configured")
	}

	_, err := users.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrObjectNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	if err := users.Create(ctx, &repository.User{
		ID:       uuid.NewString(),
		Username: username,
		Role:     repository.RoleAdmin,
	}, password); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}
