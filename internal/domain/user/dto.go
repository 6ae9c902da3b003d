package user

import (
	"github.com/shopspring/decimal"
	"github.com/sweetlane/pos-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Username           string           `json:"username"`
	Name               string           `json:"name"`
	Password           string           `json:"password"`
	Role               string           `json:"role"`
	MonthlySalary      *decimal.Decimal `json:"monthly_salary,omitempty"`
	OvertimeMultiplier *decimal.Decimal `json:"overtime_multiplier,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	validRoles := []string{
		string(RoleDeveloper), string(RoleAdmin), string(RoleModerator), string(RoleUser),
	}
	if !validator.IsInSlice(r.Role, validRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: developer, admin, moderator, user",
		})
	}

	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if r.OvertimeMultiplier != nil && r.OvertimeMultiplier.Cmp(decimal.NewFromInt(1)) < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_multiplier",
			Message: "overtime_multiplier must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID                 string           `json:"-"`
	Name               *string          `json:"name,omitempty"`
	Password           *string          `json:"password,omitempty"`
	Role               *string          `json:"role,omitempty"`
	MonthlySalary      *decimal.Decimal `json:"monthly_salary,omitempty"`
	OvertimeMultiplier *decimal.Decimal `json:"overtime_multiplier,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Role != nil {
		validRoles := []string{
			string(RoleDeveloper), string(RoleAdmin), string(RoleModerator), string(RoleUser),
		}
		if !validator.IsInSlice(*r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of: developer, admin, moderator, user",
			})
		}
	}

	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if r.OvertimeMultiplier != nil && r.OvertimeMultiplier.Cmp(decimal.NewFromInt(1)) < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_multiplier",
			Message: "overtime_multiplier must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID                 string          `json:"id"`
	Username           string          `json:"username"`
	Name               string          `json:"name"`
	Role               string          `json:"role"`
	MonthlySalary      decimal.Decimal `json:"monthly_salary"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier"`
	IsEnabled          bool            `json:"is_enabled"`
	CreatedAt          string          `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Name:               u.Name,
		Role:               string(u.Role),
		MonthlySalary:      u.MonthlySalary,
		OvertimeMultiplier: u.EffectiveOvertimeMultiplier(),
		IsEnabled:          u.IsEnabled,
		CreatedAt:          u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
