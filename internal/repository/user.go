package repository

import (
	"context"
	"fmt"

	"github.com/campusgg/events-api/internal/domain"
	"github.com/campusgg/events-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindBySchool(ctx context.Context, schoolID uint, limit int) ([]dao.User, error)
	FindRecent(ctx context.Context, limit int) ([]dao.User, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	var schoolID *uint
	if user.SchoolID != 0 {
		schoolID = &user.SchoolID
	}

	created, err := r.dao.Insert(ctx, dao.User{
		Email:     user.Email,
		Password:  user.Password,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Gravatar:  user.Gravatar,
		Status:    user.Status,
		SchoolID:  schoolID,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return userDaoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return userDaoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return userDaoToDomain(found), nil
}

func (r *UserRepository) FindBySchool(ctx context.Context, schoolID uint, limit int) ([]domain.User, error) {
	found, err := r.dao.FindBySchool(ctx, schoolID, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySchool -> %w", err)
	}

	return usersDaoToDomain(found), nil
}

func (r *UserRepository) FindRecent(ctx context.Context, limit int) ([]domain.User, error) {
	found, err := r.dao.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecent -> %w", err)
	}

	return usersDaoToDomain(found), nil
}

func userDaoToDomain(u dao.User) domain.User {
	user := domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Gravatar:  u.Gravatar,
		Status:    u.Status,
		School:    schoolDaoToDomain(u.School),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.SchoolID != nil {
		user.SchoolID = *u.SchoolID
	}

	return user
}

func usersDaoToDomain(users []dao.User) []domain.User {
	domainUsers := make([]domain.User, len(users))
	for i, u := range users {
		domainUsers[i] = userDaoToDomain(u)
	}
	return domainUsers
}

func schoolDaoToDomain(s dao.School) domain.School {
	return domain.School{
		ID:            s.ID,
		Name:          s.Name,
		FormattedName: s.FormattedName,
	}
}
