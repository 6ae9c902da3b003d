package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)

	GetByUsername(ctx context.Context, username string) (User, error)

	// List retrieves all users; when includeDevelopers is false, developer
	// accounts are filtered out (regular admins never see them).
	List(ctx context.Context, includeDevelopers bool) ([]User, error)

	// ListEnabled retrieves enabled users only, for payroll runs.
	ListEnabled(ctx context.Context, includeDevelopers bool) ([]User, error)

	Update(ctx context.Context, u User) error

	Delete(ctx context.Context, id string) error
}
