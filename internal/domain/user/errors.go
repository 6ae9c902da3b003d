package user

import "errors"

// User domain errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameExists       = errors.New("username already taken")
	ErrCannotDisableSelf    = errors.New("cannot disable your own account")
	ErrAdminAccessRequired  = errors.New("admin access required")
	ErrStaffAccessRequired  = errors.New("staff access required")
	ErrAccountDisabled      = errors.New("account is disabled")
	ErrInvalidRole          = errors.New("invalid role")
	ErrSalaryNotConfigured  = errors.New("monthly salary is not configured for this user")
)
