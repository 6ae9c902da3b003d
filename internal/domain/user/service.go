package user

import "context"

// UserService defines business logic for user management.
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	Get(ctx context.Context, id string) (UserResponse, error)

	// List returns user accounts; developer accounts are hidden unless the
	// caller is a developer.
	List(ctx context.Context) ([]UserResponse, error)

	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// ToggleStatus flips the enabled flag. A user cannot disable themself.
	ToggleStatus(ctx context.Context, id string) (bool, error)

	Delete(ctx context.Context, id string) error
}
