package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/repository"
)

var (
	ErrUserNotFound  = repository.ErrUserNotFound
	ErrWrongPassword = errors.New("wrong password")
)

type AuthUserRepository interface {
	FindActiveByUsername(ctx context.Context, username string) (domain.User, error)
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Login verifies the password of an ACTIVE user. Inactive or unknown
// usernames both come back as ErrUserNotFound so callers cannot tell
// them apart.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.repo.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindActiveByUsername -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	if err = s.repo.TouchLastLogin(ctx, user.ID, time.Now()); err != nil {
		zap.L().Warn("could not update last_login",
			zap.String("username", user.Username),
			zap.Error(err))
	}

	return user, nil
}
