package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campusgg/events-api/internal/domain"
	"github.com/campusgg/events-api/internal/repository"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 50
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindBySchool(ctx context.Context, schoolID uint, limit int) ([]domain.User, error)
	FindRecent(ctx context.Context, limit int) ([]domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// SchoolUsers lists members of a school for the sidebar widget. Failures
// are logged and yield an empty list.
func (s *UserService) SchoolUsers(ctx context.Context, schoolID uint, limit int) []domain.User {
	users, err := s.repo.FindBySchool(ctx, schoolID, clampLimit(limit))
	if err != nil {
		zap.L().Warn("failed to list school users",
			zap.Uint("school_id", schoolID),
			zap.Error(err),
		)
		return []domain.User{}
	}

	return publicUsers(users)
}

// RecentUsers lists the newest accounts. Failures are logged and yield an
// empty list.
func (s *UserService) RecentUsers(ctx context.Context, limit int) []domain.User {
	users, err := s.repo.FindRecent(ctx, clampLimit(limit))
	if err != nil {
		zap.L().Warn("failed to list recent users", zap.Error(err))
		return []domain.User{}
	}

	return publicUsers(users)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

func publicUsers(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out
}
