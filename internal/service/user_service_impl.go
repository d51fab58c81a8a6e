package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lvanderveer/tally/internal/domain"
	"github.com/lvanderveer/tally/internal/repository"
)

type userService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, u *domain.User) error {
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("email %q: %w", u.Email, domain.ErrInvalidInput)
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = domain.RoleEmployee
	}
	u.CreatedAt = time.Now().UTC()
	return s.users.Create(ctx, u)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
