package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/repository/dao"
)

var (
	ErrUsernameExists = dao.ErrUsernameExists
	ErrUserNotFound   = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByUsername(ctx context.Context, username string) (dao.User, error)
	FindActiveByUsername(ctx context.Context, username string) (dao.User, error)
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
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
	created, err := r.dao.Insert(ctx, dao.User{
		Username:    user.Username,
		Password:    user.Password,
		FullName:    user.FullName,
		Position:    user.Position,
		Description: user.Description,
		Status:      user.Status,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindActiveByUsername(ctx context.Context, username string) (domain.User, error) {
	found, err := r.dao.FindActiveByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindActiveByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	if err := r.dao.TouchLastLogin(ctx, id, at); err != nil {
		return fmt.Errorf("r.dao.TouchLastLogin -> %w", err)
	}

	return nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:          u.ID,
		Username:    u.Username,
		Password:    u.Password,
		FullName:    u.FullName,
		Position:    u.Position,
		Description: u.Description,
		Status:      u.Status,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
