package shared

import (
	"studio-booking/internal/domain/admin"

	"github.com/google/uuid"
)

// Principal is the authenticated caller, resolved by the transport layer and
// passed explicitly into every gated operation.
type Principal struct {
	AdminID uuid.UUID
	Role    admin.Role
}

func Anonymous() Principal {
	return Principal{}
}

func NewPrincipal(adminID uuid.UUID, role admin.Role) Principal {
	return Principal{AdminID: adminID, Role: role}
}

func (p Principal) IsAuthenticated() bool {
	return p.AdminID != uuid.Nil && p.Role.IsValid()
}

func (p Principal) IsAdmin() bool {
	return p.IsAuthenticated() && p.Role == admin.RoleAdmin
}
