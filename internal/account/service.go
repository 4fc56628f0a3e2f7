package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	app_errors "codecraft/backend/internal/errors"
)

// Profile is the caller-supplied part of a user record.
type Profile struct {
	ClerkID   string
	Email     string
	FirstName *string
	LastName  *string
	ImageURL  *string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateOrUpdate stores the profile and returns the record as persisted.
func (s *Service) CreateOrUpdate(ctx context.Context, p Profile) (*User, error) {
	if p.ClerkID == "" || p.Email == "" {
		return nil, fmt.Errorf("%w: clerk id and email are required", app_errors.ErrValidation)
	}
	u := &User{
		ClerkID:   p.ClerkID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		ImageURL:  p.ImageURL,
	}
	if err := s.repo.Upsert(ctx, u); err != nil {
		return nil, fmt.Errorf("could not save user: %w", err)
	}
	slog.Info("User saved", "clerk_id", p.ClerkID)
	return s.Get(ctx, p.ClerkID)
}

func (s *Service) Get(ctx context.Context, clerkID string) (*User, error) {
	u, err := s.repo.FindByClerkID(ctx, clerkID)
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}
	return users, nil
}

func (s *Service) Delete(ctx context.Context, clerkID string) error {
	if err := s.repo.DeleteByClerkID(ctx, clerkID); err != nil {
		return translate(err)
	}
	slog.Info("User deleted", "clerk_id", clerkID)
	return nil
}

func translate(err error) error {
	if errors.Is(err, ErrNotFound) {
		return app_errors.ErrUserNotFound
	}
	return err
}
