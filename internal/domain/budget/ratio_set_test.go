package budget

import "testing"

func TestBudgetRatioSet_SyncFromRatio(t *testing.T) {
	t.Run("recomputes only the amount", func(t *testing.T) {
		var set BudgetRatioSet
		set.SyncFromRatio(BudgetOperating, 35, 100000)
		if set.Operating.Ratio != 35 {
			t.Fatalf("expected ratio 35, got %v", set.Operating.Ratio)
		}
		if set.Operating.Amount != 35000 {
			t.Fatalf("expected amount 35000, got %d", set.Operating.Amount)
		}
		if set.Misc != (BudgetPair{}) || set.Incentive != (BudgetPair{}) {
			t.Fatalf("other pairs touched: %+v", set)
		}
	})

	t.Run("zero gross profit forces amount to zero", func(t *testing.T) {
		var set BudgetRatioSet
		set.SyncFromRatio(BudgetMisc, 50, 0)
		if set.Misc.Ratio != 50 || set.Misc.Amount != 0 {
			t.Fatalf("unexpected pair: %+v", set.Misc)
		}
	})

	t.Run("negative gross profit keeps sign", func(t *testing.T) {
		var set BudgetRatioSet
		set.SyncFromRatio(BudgetIncentive, 10, -20000)
		if set.Incentive.Amount != -2000 {
			t.Fatalf("expected -2000, got %d", set.Incentive.Amount)
		}
	})

	t.Run("unknown key is a no-op", func(t *testing.T) {
		var set BudgetRatioSet
		set.SyncFromRatio(BudgetKey("bogus"), 10, 100000)
		if set != (BudgetRatioSet{}) {
			t.Fatalf("unexpected mutation: %+v", set)
		}
	})
}

func TestBudgetRatioSet_SyncFromAmount(t *testing.T) {
	t.Run("recomputes only the ratio", func(t *testing.T) {
		var set BudgetRatioSet
		set.SyncFromAmount(BudgetOperating, 25000, 100000)
		if set.Operating.Amount != 25000 {
			t.Fatalf("expected amount 25000, got %d", set.Operating.Amount)
		}
		if set.Operating.Ratio != 25 {
			t.Fatalf("expected ratio 25, got %v", set.Operating.Ratio)
		}
	})

	t.Run("zero gross profit forces ratio to zero", func(t *testing.T) {
		var set BudgetRatioSet
		set.SyncFromAmount(BudgetOperating, 5000, 0)
		if set.Operating.Amount != 5000 || set.Operating.Ratio != 0 {
			t.Fatalf("unexpected pair: %+v", set.Operating)
		}
	})
}

func TestBudgetRatioSet_Recalculate(t *testing.T) {
	t.Run("ratios stay authoritative across a gross profit change", func(t *testing.T) {
		var set BudgetRatioSet
		set.SyncFromRatio(BudgetOperating, 30, 100000)
		set.SyncFromRatio(BudgetMisc, 10, 100000)
		set.SyncFromRatio(BudgetIncentive, 5, 100000)

		set.Recalculate(-20000)

		if set.Operating.Ratio != 30 || set.Operating.Amount != -6000 {
			t.Fatalf("unexpected operating pair: %+v", set.Operating)
		}
		if set.Misc.Amount != -2000 || set.Incentive.Amount != -1000 {
			t.Fatalf("unexpected pairs: misc=%+v incentive=%+v", set.Misc, set.Incentive)
		}
	})

	t.Run("gross profit dropping to zero zeroes all amounts", func(t *testing.T) {
		var set BudgetRatioSet
		set.SyncFromRatio(BudgetOperating, 30, 100000)
		set.Recalculate(0)
		if set.Operating.Ratio != 30 || set.Operating.Amount != 0 {
			t.Fatalf("unexpected pair: %+v", set.Operating)
		}
	})
}
