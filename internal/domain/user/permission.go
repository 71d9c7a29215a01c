package user

type Permission string

const (
	// Dashboard
	PermissionDashboardView           Permission = "dashboard.view"
	PermissionDashboardPendingActions Permission = "dashboard.pending_actions"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Holiday calendar
	PermissionHolidayView   Permission = "holiday.view"
	PermissionHolidayManage Permission = "holiday.manage"
)

// RolePermissions maps access levels to their permissions
var RolePermissions = map[AccessLevel][]Permission{
	AccessAdmin: {
		PermissionDashboardView,
		PermissionDashboardPendingActions,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionHolidayView,
		PermissionHolidayManage,
	},
	AccessHR: {
		PermissionDashboardView,
		PermissionDashboardPendingActions,
		PermissionEmployeeViewAll,
		PermissionHolidayView,
		PermissionHolidayManage,
	},
	AccessManager: {
		PermissionDashboardView,
		PermissionDashboardPendingActions,
		PermissionEmployeeViewAll,
		PermissionHolidayView,
		PermissionHolidayManage,
	},
	AccessAccountant: {
		PermissionDashboardView,
		PermissionEmployeeViewAll,
		PermissionHolidayView,
		PermissionHolidayManage,
	},
	AccessEmployee: {
		PermissionDashboardView,
		PermissionEmployeeViewAll,
		PermissionHolidayView,
		// holiday controls are not gated on access level
		PermissionHolidayManage,
	},
}

// HasPermission checks if an access level has a specific permission
func HasPermission(level AccessLevel, permission Permission) bool {
	permissions, exists := RolePermissions[level]
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

// Can checks a permission against an identity. A pending identity has no
// permissions at all.
func (i Identity) Can(permission Permission) bool {
	if !i.loaded {
		return false
	}
	return HasPermission(i.Level(), permission)
}

// CanManage reports whether the identity may create, edit or delete employees.
// It is false until the identity fetch has resolved.
func CanManage(identity Identity) bool {
	return identity.IsAdmin() && identity.Can(PermissionEmployeeManage)
}
