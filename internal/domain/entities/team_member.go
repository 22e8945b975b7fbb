package entities

// MemberRole classifies a project assignment for billing purposes.

type MemberRole string

const (
	MemberRoleLead          MemberRole = "lead"
	MemberRoleMember        MemberRole = "member"
	MemberRoleSubcontractor MemberRole = "subcontractor"
)

// TeamMember is one project assignment used as BudgetEngine input.
//
// UtilizationRate and IncentiveRate are percentages in [0, 100]; UnitPrice is an
// integer in the smallest currency unit.

type TeamMember struct {
	ID              string     `json:"id"`
	Role            MemberRole `json:"role"`
	Name            string     `json:"name"`
	UtilizationRate float64    `json:"utilization_rate"`
	UnitPrice       int64      `json:"unit_price"`
	IncentiveRate   float64    `json:"incentive_rate,omitempty"`
}

// ChangeRole switches the member's role.
//
// Switching to subcontractor clears name, utilization, unit price and incentive.
// The reset is one-way: switching back to a billable role does not restore the
// previous values.
func (m *TeamMember) ChangeRole(role MemberRole) {
	m.Role = role
	if role == MemberRoleSubcontractor {
		m.Name = ""
		m.UtilizationRate = 0
		m.UnitPrice = 0
		m.IncentiveRate = 0
	}
}
