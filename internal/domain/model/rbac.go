package model

// Kumpulan izin tetap per role.
type Permissions struct {
	CanManageUsers    bool `json:"canManageUsers"`
	CanManageProducts bool `json:"canManageProducts"`
	CanManageServices bool `json:"canManageServices"`
	CanManageOrders   bool `json:"canManageOrders"`
	CanViewReports    bool `json:"canViewReports"`
	CanCreateOrders   bool `json:"canCreateOrders"`
}

// PermissionsFor menurunkan izin dari role. Role kosong/tidak dikenal
// berarti tanpa identitas: semua false.
func PermissionsFor(role Role) Permissions {
	switch role {
	case RoleSuperAdmin:
		return Permissions{
			CanManageUsers:    true,
			CanManageProducts: true,
			CanManageServices: true,
			CanManageOrders:   true,
			CanViewReports:    true,
			CanCreateOrders:   true,
		}
	case RoleAdmin:
		return Permissions{
			CanManageProducts: true,
			CanManageServices: true,
			CanManageOrders:   true,
			CanViewReports:    true,
			CanCreateOrders:   true,
		}
	case RoleGuest:
		return Permissions{CanCreateOrders: true}
	default:
		return Permissions{}
	}
}
