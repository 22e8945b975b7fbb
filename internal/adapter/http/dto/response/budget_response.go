package response

import "pj_billing/internal/domain/budget"

type FinancialSnapshotResponse struct {
	Revenue       int64 `json:"revenue"`
	LaborCost     int64 `json:"labor_cost"`
	TotalExpenses int64 `json:"total_expenses"`
	GrossProfit   int64 `json:"gross_profit"`
}

func FromFinancialSnapshot(s budget.FinancialSnapshot) FinancialSnapshotResponse {
	return FinancialSnapshotResponse(s)
}

// BudgetPairResponse carries the reconciled pair plus the one-decimal display
// form of the ratio.
type BudgetPairResponse struct {
	Ratio        float64 `json:"ratio"`
	RatioDisplay string  `json:"ratio_display"`
	Amount       int64   `json:"amount"`
}

type BudgetRatioSetResponse struct {
	Operating BudgetPairResponse `json:"operating"`
	Misc      BudgetPairResponse `json:"misc"`
	Incentive BudgetPairResponse `json:"incentive"`
}

func FromRatioSet(s budget.BudgetRatioSet) BudgetRatioSetResponse {
	return BudgetRatioSetResponse{
		Operating: fromPair(s.Operating),
		Misc:      fromPair(s.Misc),
		Incentive: fromPair(s.Incentive),
	}
}

func fromPair(p budget.BudgetPair) BudgetPairResponse {
	return BudgetPairResponse{
		Ratio:        p.Ratio,
		RatioDisplay: budget.FormatRatio(p.Ratio),
		Amount:       p.Amount,
	}
}
