package auth

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sweetlane/pos-backend-go/internal/domain/user"
)

// Identity is the authenticated caller, decoded from the access token claims.
type Identity struct {
	UserID   string
	Username string
	Role     user.Role
}

// IdentityFromContext extracts the caller identity placed into the request
// context by the JWT verifier middleware.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		UserID:   userID,
		Username: username,
		Role:     user.Role(role),
	}, nil
}

// IsStaff reports whether the caller can manage stock and attendance.
func (i Identity) IsStaff() bool {
	u := user.User{Role: i.Role}
	return u.CanManageStock()
}

// IsAdmin reports whether the caller can manage accounts and payroll.
func (i Identity) IsAdmin() bool {
	u := user.User{Role: i.Role}
	return u.CanManageUsers()
}

// IsDeveloper reports whether the caller holds the hidden developer role.
func (i Identity) IsDeveloper() bool {
	return i.Role == user.RoleDeveloper
}
