package user

type Permission string

const (
	// User Management
	PermissionUserManage Permission = "user.manage"

	// Stock Management
	PermissionStockManage Permission = "stock.manage"
	PermissionRestock     Permission = "stock.restock"

	// Attendance & Payroll
	PermissionAttendanceTrack Permission = "attendance.track"
	PermissionPayrollView     Permission = "payroll.view"

	// Reports
	PermissionReportsView Permission = "reports.view"

	// Register
	PermissionCheckout Permission = "register.checkout"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleDeveloper: {
		PermissionUserManage,
		PermissionStockManage,
		PermissionRestock,
		PermissionAttendanceTrack,
		PermissionPayrollView,
		PermissionReportsView,
		PermissionCheckout,
	},
	RoleAdmin: {
		PermissionUserManage,
		PermissionStockManage,
		PermissionRestock,
		PermissionAttendanceTrack,
		PermissionPayrollView,
		PermissionReportsView,
		PermissionCheckout,
	},
	RoleModerator: {
		PermissionStockManage,
		PermissionRestock,
		PermissionAttendanceTrack,
		PermissionPayrollView,
		PermissionReportsView,
		PermissionCheckout,
	},
	RoleUser: {
		PermissionCheckout,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
