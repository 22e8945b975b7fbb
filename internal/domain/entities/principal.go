package entities

const (
	DepartmentFinance = "finance"

	RoleManager  = "manager"
	RoleDirector = "director"
)

// Principal is the acting user, supplied by an external identity collaborator.

type Principal struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// CanApprove is the approval capability predicate: finance department AND an
// elevated role. Evaluated both at the HTTP gate and inside the approval
// operations.
func (p Principal) CanApprove() bool {
	if p.Department != DepartmentFinance {
		return false
	}
	return p.Role == RoleManager || p.Role == RoleDirector
}
