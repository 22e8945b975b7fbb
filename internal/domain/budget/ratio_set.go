package budget

// BudgetKey names one of the three reconciled budget pairs.

type BudgetKey string

const (
	BudgetOperating BudgetKey = "operating"
	BudgetMisc      BudgetKey = "misc"
	BudgetIncentive BudgetKey = "incentive"
)

// BudgetPair is one percentage/amount pair kept consistent against gross profit.
type BudgetPair struct {
	Ratio  float64 `json:"ratio"`
	Amount int64   `json:"amount"`
}

// BudgetRatioSet is the three named budget pairs of a project.
//
// Reconciliation is driven by an explicit authoritative side per event: editing
// the ratio recomputes only the amount and vice versa. The two directions are
// never chained, which is what rules out oscillation between watchers.

type BudgetRatioSet struct {
	Operating BudgetPair `json:"operating"`
	Misc      BudgetPair `json:"misc"`
	Incentive BudgetPair `json:"incentive"`
}

func (s *BudgetRatioSet) pair(key BudgetKey) *BudgetPair {
	switch key {
	case BudgetOperating:
		return &s.Operating
	case BudgetMisc:
		return &s.Misc
	case BudgetIncentive:
		return &s.Incentive
	}
	return nil
}

// SyncFromRatio sets the ratio of one pair and recomputes its amount.
func (s *BudgetRatioSet) SyncFromRatio(key BudgetKey, ratio float64, grossProfit int64) {
	p := s.pair(key)
	if p == nil {
		return
	}
	p.Ratio = ratio
	p.Amount = AmountFromRatio(ratio, grossProfit)
}

// SyncFromAmount sets the amount of one pair and recomputes its ratio.
// A zero gross profit forces the ratio to zero.
func (s *BudgetRatioSet) SyncFromAmount(key BudgetKey, amount, grossProfit int64) {
	p := s.pair(key)
	if p == nil {
		return
	}
	p.Amount = amount
	p.Ratio = RatioFromAmount(amount, grossProfit)
}

// Recalculate recomputes every amount from its ratio against a new gross
// profit, keeping the ratios authoritative. Used when financial inputs change.
func (s *BudgetRatioSet) Recalculate(grossProfit int64) {
	for _, key := range []BudgetKey{BudgetOperating, BudgetMisc, BudgetIncentive} {
		p := s.pair(key)
		p.Amount = AmountFromRatio(p.Ratio, grossProfit)
	}
}
