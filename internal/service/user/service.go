package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sweetlane/pos-backend-go/internal/domain/auth"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo user.UserRepository
}

// NewUserService creates a new user management service.
func NewUserService(userRepo user.UserRepository) user.UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if existing.ID != "" {
		return user.UserResponse{}, user.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := user.User{
		ID:            uuid.New().String(),
		Username:      req.Username,
		Name:          req.Name,
		PasswordHash:  string(hash),
		Role:          user.Role(req.Role),
		MonthlySalary: decimal.Zero,
		IsEnabled:     true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.MonthlySalary != nil {
		u.MonthlySalary = *req.MonthlySalary
	}
	if req.OvertimeMultiplier != nil {
		u.OvertimeMultiplier = *req.OvertimeMultiplier
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ToResponse(created), nil
}

func (s *userService) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

func (s *userService) List(ctx context.Context) ([]user.UserResponse, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx, identity.IsDeveloper())
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

func (s *userService) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}
	if req.MonthlySalary != nil {
		u.MonthlySalary = *req.MonthlySalary
	}
	if req.OvertimeMultiplier != nil {
		u.OvertimeMultiplier = *req.OvertimeMultiplier
	}
	u.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, u); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user.ToResponse(u), nil
}

func (s *userService) ToggleStatus(ctx context.Context, id string) (bool, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return false, err
	}
	if identity.UserID == id {
		return false, user.ErrCannotDisableSelf
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	u.IsEnabled = !u.IsEnabled
	u.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, u); err != nil {
		return false, fmt.Errorf("failed to update user: %w", err)
	}

	return u.IsEnabled, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
