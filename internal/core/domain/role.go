package domain

// Role is the closed set of dashboard role claims. The three variants are
// exactly the values the gym API returns on login; anything else renders an
// empty menu and a blank dashboard rather than an error.
type Role string

const (
	RoleMember   Role = "Member"
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
)

func (r Role) String() string { return string(r) }
