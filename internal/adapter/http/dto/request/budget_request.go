package request

import (
	"pj_billing/internal/domain/budget"
	"pj_billing/internal/domain/entities"
)

// TeamMemberRequest carries one assignment row from the wizard. UnitPrice is a
// raw string: user input may arrive with full-width digits or grouping
// separators, and normalization happens in the budget engine before parsing.
type TeamMemberRequest struct {
	ID              string  `json:"id"`
	Role            string  `json:"role" binding:"required"`
	Name            string  `json:"name"`
	UtilizationRate float64 `json:"utilization_rate"`
	UnitPrice       string  `json:"unit_price"`
	IncentiveRate   float64 `json:"incentive_rate"`
}

type PaymentLineRequest struct {
	ID       string `json:"id"`
	Payee    string `json:"payee"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// FinancialsRequest asks for a full snapshot recomputation.
type FinancialsRequest struct {
	Category string               `json:"category" binding:"required"`
	Members  []TeamMemberRequest  `json:"members"`
	Payments []PaymentLineRequest `json:"payments"`
}

func (r FinancialsRequest) ToMembers() []entities.TeamMember {
	members := make([]entities.TeamMember, 0, len(r.Members))
	for _, m := range r.Members {
		member := entities.TeamMember{
			ID:              m.ID,
			Name:            m.Name,
			UtilizationRate: m.UtilizationRate,
			UnitPrice:       budget.ParseAmount(m.UnitPrice),
			IncentiveRate:   m.IncentiveRate,
		}
		member.ChangeRole(entities.MemberRole(m.Role))
		members = append(members, member)
	}
	return members
}

func (r FinancialsRequest) ToPayments() []entities.PaymentLine {
	payments := make([]entities.PaymentLine, 0, len(r.Payments))
	for _, p := range r.Payments {
		payments = append(payments, entities.PaymentLine{
			ID:       p.ID,
			Payee:    p.Payee,
			Category: p.Category,
			Amount:   budget.ParseAmount(p.Amount),
		})
	}
	return payments
}

// BudgetPairPayload mirrors budget.BudgetPair on the wire.
type BudgetPairPayload struct {
	Ratio  float64 `json:"ratio"`
	Amount int64   `json:"amount"`
}

type BudgetRatioSetPayload struct {
	Operating BudgetPairPayload `json:"operating"`
	Misc      BudgetPairPayload `json:"misc"`
	Incentive BudgetPairPayload `json:"incentive"`
}

func (p BudgetRatioSetPayload) ToRatioSet() budget.BudgetRatioSet {
	return budget.BudgetRatioSet{
		Operating: budget.BudgetPair(p.Operating),
		Misc:      budget.BudgetPair(p.Misc),
		Incentive: budget.BudgetPair(p.Incentive),
	}
}

// BudgetRecalculateRequest recomputes every amount from its ratio after the
// gross profit changed; the ratios stay authoritative.
type BudgetRecalculateRequest struct {
	GrossProfit int64                 `json:"gross_profit"`
	Set         BudgetRatioSetPayload `json:"set"`
}

// BudgetSyncRequest reconciles one pair of the set. Side names the
// authoritative side for this event: "ratio" recomputes the amount, "amount"
// recomputes the ratio. Never both.
type BudgetSyncRequest struct {
	GrossProfit int64                 `json:"gross_profit"`
	Key         string                `json:"key" binding:"required"`
	Side        string                `json:"side" binding:"required"`
	Ratio       float64               `json:"ratio"`
	Amount      string                `json:"amount"`
	Set         BudgetRatioSetPayload `json:"set"`
}
