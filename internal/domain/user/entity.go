package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleDeveloper Role = "developer" // Full access, hidden from regular listings
	RoleAdmin     Role = "admin"     // Manages users, stock and payroll
	RoleModerator Role = "moderator" // Runs the register, stock and attendance
	RoleUser      Role = "user"      // Cashier-only access
)

// DefaultOvertimeMultiplier is applied to the hourly rate for overtime hours
// when a user record carries no explicit multiplier.
var DefaultOvertimeMultiplier = decimal.NewFromFloat(1.5)

type User struct {
	ID                 string
	Username           string
	Name               string
	PasswordHash       string
	Role               Role
	MonthlySalary      decimal.Decimal
	OvertimeMultiplier decimal.Decimal
	IsEnabled          bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsDeveloper checks if user has the developer role
func (u *User) IsDeveloper() bool {
	return u.Role == RoleDeveloper
}

// IsAdmin checks if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManageUsers checks if user can create, edit and disable accounts
func (u *User) CanManageUsers() bool {
	return u.IsDeveloper() || u.IsAdmin()
}

// CanManageStock checks if user can edit products and restock
func (u *User) CanManageStock() bool {
	return u.IsDeveloper() || u.IsAdmin() || u.Role == RoleModerator
}

// CanUseAttendanceTracker checks if user can record attendance and view payroll
func (u *User) CanUseAttendanceTracker() bool {
	return u.CanManageStock()
}

// EffectiveOvertimeMultiplier returns the configured multiplier, or the default
// when none was ever set.
func (u *User) EffectiveOvertimeMultiplier() decimal.Decimal {
	if u.OvertimeMultiplier.IsZero() {
		return DefaultOvertimeMultiplier
	}
	return u.OvertimeMultiplier
}
