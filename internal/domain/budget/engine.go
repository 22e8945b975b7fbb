package budget

import (
	"math"
	"strconv"
	"strings"

	"pj_billing/internal/domain/entities"

	"golang.org/x/text/width"
)

// FinancialSnapshot is the derived financial picture of a project.
//
// It is recomputed in full on every input change and never cached. All values
// are integers in the smallest currency unit; GrossProfit may be negative.

type FinancialSnapshot struct {
	Revenue       int64 `json:"revenue"`
	LaborCost     int64 `json:"labor_cost"`
	TotalExpenses int64 `json:"total_expenses"`
	GrossProfit   int64 `json:"gross_profit"`
}

// ComputeFinancials derives the snapshot from the current members and payment
// lines. Pure and total: small inputs make incremental recomputation pointless.
//
// Billing basis by category:
//   - fixed_bid: revenue is the per-member unit price x utilization sum.
//   - recurring: revenue is the aggregated labor + outsourcing cost.
func ComputeFinancials(members []entities.TeamMember, payments []entities.PaymentLine, category entities.ProjectCategory) FinancialSnapshot {
	var labor int64
	for _, m := range members {
		labor += memberCost(m)
	}

	var outsourcing int64
	for _, p := range payments {
		outsourcing += p.Amount
	}

	total := labor + outsourcing

	var revenue int64
	switch category {
	case entities.ProjectCategoryRecurring:
		revenue = total
	default:
		revenue = labor
	}

	return FinancialSnapshot{
		Revenue:       revenue,
		LaborCost:     labor,
		TotalExpenses: total,
		GrossProfit:   revenue - total,
	}
}

// memberCost bills one assignment: unit price x utilization rate.
// Subcontractors carry cleared rates and contribute zero.
func memberCost(m entities.TeamMember) int64 {
	return roundHalfUp(float64(m.UnitPrice) * m.UtilizationRate / 100)
}

// AmountFromRatio converts a budget percentage into a currency amount against
// gross profit. The ratio side is authoritative for this event; only the amount
// is recomputed. A zero gross profit yields zero, never a division artifact.
func AmountFromRatio(ratio float64, grossProfit int64) int64 {
	if grossProfit == 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0
	}
	return roundHalfUp(float64(grossProfit) * ratio / 100)
}

// RatioFromAmount converts a currency amount into a budget percentage against
// gross profit. The amount side is authoritative; only the ratio is recomputed.
// The result keeps full precision; use FormatRatio for display.
func RatioFromAmount(amount, grossProfit int64) float64 {
	if grossProfit == 0 {
		return 0
	}
	return float64(amount) / float64(grossProfit) * 100
}

// FormatRatio renders a ratio for display, rounded half-up to one decimal.
// Zero renders as "0".
func FormatRatio(ratio float64) string {
	if ratio == 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return "0"
	}
	rounded := float64(roundHalfUp(ratio*10)) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// ParseAmount parses user-entered currency input. Full-width digits are
// narrowed before parsing and grouping separators dropped; anything that still
// fails to parse is treated as zero.
func ParseAmount(s string) int64 {
	s = width.Narrow.String(strings.TrimSpace(s))
	s = strings.NewReplacer(",", "", "_", "", " ", "").Replace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func roundHalfUp(v float64) int64 {
	if v >= 0 {
		return int64(math.Floor(v + 0.5))
	}
	return -int64(math.Floor(-v + 0.5))
}
