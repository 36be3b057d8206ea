package entities

// Role is the staff role inside a tenant. Bot-link and user records carry a
// role; API keys and bearers act as full-tenant-admin equivalents.

type Role string

const (
	RoleOwner      Role = "owner"
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleManager    Role = "manager"
	RoleConsultant Role = "consultant"
	RoleTechnician Role = "technician"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleSupervisor, RoleManager, RoleConsultant, RoleTechnician:
		return true
	}
	return false
}

// Notifying reports whether members with this role receive order event
// notifications in addition to the people directly involved in the order.
func (r Role) Notifying() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleSupervisor, RoleManager:
		return true
	}
	return false
}

// Capability is a coarse-grained named right checked before mutations.

type Capability string

const (
	CapabilityManageCompany   Capability = "manage:company"
	CapabilityManageMembers   Capability = "manage:members"
	CapabilityManageOrders    Capability = "manage:orders"
	CapabilityViewOrders      Capability = "view:orders"
	CapabilityManagePayments  Capability = "manage:payments"
	CapabilityManageCustomers Capability = "manage:customers"
)

// roleCapabilities is the permission model: a fixed, pure mapping from role
// to capability set. Same input, same output — the audit trail depends on it.
var roleCapabilities = map[Role][]Capability{
	RoleOwner: {
		CapabilityManageCompany, CapabilityManageMembers, CapabilityManageOrders,
		CapabilityViewOrders, CapabilityManagePayments, CapabilityManageCustomers,
	},
	RoleAdmin: {
		CapabilityManageCompany, CapabilityManageMembers, CapabilityManageOrders,
		CapabilityViewOrders, CapabilityManagePayments, CapabilityManageCustomers,
	},
	RoleSupervisor: {
		CapabilityManageOrders, CapabilityViewOrders, CapabilityManagePayments,
		CapabilityManageCustomers,
	},
	RoleManager: {
		CapabilityManageOrders, CapabilityViewOrders, CapabilityManagePayments,
		CapabilityManageCustomers,
	},
	RoleConsultant: {
		CapabilityManageOrders, CapabilityViewOrders, CapabilityManageCustomers,
	},
	RoleTechnician: {
		CapabilityViewOrders,
	},
}

// RoleCapabilities returns the capability set for a role. The returned slice
// is a copy. Unknown roles get no capabilities; every declared role maps to a
// non-empty set.
func RoleCapabilities(r Role) []Capability {
	caps := roleCapabilities[r]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// AllCapabilities is the full-tenant-admin set used for API keys and the
// bearers derived from them.
func AllCapabilities() []Capability {
	return RoleCapabilities(RoleOwner)
}
