package entity

// Role is the actor a session identifier belongs to.
type Role string

const (
	RoleClient Role = "client"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

var Roles = []Role{RoleClient, RoleVendor, RoleAdmin}

// StorageKey is the browser storage key holding the role's identifier.
func (r Role) StorageKey() string {
	switch r {
	case RoleVendor:
		return "vendorId"
	case RoleAdmin:
		return "adminId"
	default:
		return "clientId"
	}
}

// LoginPath is where an unauthenticated actor of this role is sent.
func (r Role) LoginPath() string {
	switch r {
	case RoleVendor:
		return "/vendor/login"
	case RoleAdmin:
		return "/admin/login"
	default:
		return "/login"
	}
}

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleVendor || r == RoleAdmin
}
