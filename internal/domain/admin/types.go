package admin

type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// rank orders roles; unknown roles rank zero and never satisfy AtLeast.
var rank = map[Role]int{
	RoleStaff: 1,
	RoleAdmin: 2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return rank[r] > 0
}

// AtLeast reports whether r grants everything min does.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && min.IsValid() && rank[r] >= rank[min]
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
