package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	mainmodel "wht-ledger-api/internal/model/main"
)

func commissionFixture(id uint64, amount string, offset time.Duration) mainmodel.Commission {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return mainmodel.Commission{
		ID:         id,
		VendorID:   7,
		Amount:     decimal.RequireFromString(amount),
		Status:     mainmodel.CommissionPending,
		CreateTime: base.Add(offset),
	}
}

func TestPickFIFO_StopsAtCoverage(t *testing.T) {
	// 30 + 40 + 20，申请 50 → 选中前两笔，合计 70
	pending := []mainmodel.Commission{
		commissionFixture(1, "30.00", 0),
		commissionFixture(2, "40.00", time.Hour),
		commissionFixture(3, "20.00", 2*time.Hour),
	}

	result := PickFIFO(pending, decimal.RequireFromString("50.00"))

	if len(result.AssignedIDs) != 2 {
		t.Fatalf("assigned ids = %v, want [1 2]", result.AssignedIDs)
	}
	if result.AssignedIDs[0] != 1 || result.AssignedIDs[1] != 2 {
		t.Errorf("assigned order wrong: %v", result.AssignedIDs)
	}
	if !result.AssignedTotal.Equal(decimal.RequireFromString("70.00")) {
		t.Errorf("assigned total = %s, want 70.00", result.AssignedTotal)
	}
	if !result.Covers(decimal.RequireFromString("50.00")) {
		t.Errorf("result should cover requested amount")
	}
}

func TestPickFIFO_OvershootBoundedByLastUnit(t *testing.T) {
	pending := []mainmodel.Commission{
		commissionFixture(1, "30.00", 0),
		commissionFixture(2, "40.00", time.Hour),
	}
	requested := decimal.RequireFromString("35.00")

	result := PickFIFO(pending, requested)

	overshoot := result.AssignedTotal.Sub(requested)
	last := pending[len(result.AssignedIDs)-1].Amount
	if overshoot.GreaterThanOrEqual(last) {
		t.Errorf("overshoot %s must be < last unit %s", overshoot, last)
	}
}

func TestPickFIFO_ExactCoverage(t *testing.T) {
	pending := []mainmodel.Commission{
		commissionFixture(1, "30.00", 0),
		commissionFixture(2, "20.00", time.Hour),
		commissionFixture(3, "10.00", 2*time.Hour),
	}

	result := PickFIFO(pending, decimal.RequireFromString("50.00"))

	if len(result.AssignedIDs) != 2 {
		t.Fatalf("assigned ids = %v, want exactly two", result.AssignedIDs)
	}
	if !result.AssignedTotal.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("assigned total = %s, want 50.00", result.AssignedTotal)
	}
}

func TestPickFIFO_Exhausted(t *testing.T) {
	// 累计不足时走完整个列表，返回仍不覆盖的结果，由调用方判定失败
	pending := []mainmodel.Commission{
		commissionFixture(1, "10.00", 0),
	}

	result := PickFIFO(pending, decimal.RequireFromString("50.00"))

	if len(result.AssignedIDs) != 1 {
		t.Fatalf("allocator must exhaust the list, got %v", result.AssignedIDs)
	}
	if result.Covers(decimal.RequireFromString("50.00")) {
		t.Errorf("result must not cover the request")
	}
}

func TestPickFIFO_Empty(t *testing.T) {
	result := PickFIFO(nil, decimal.RequireFromString("50.00"))

	if len(result.AssignedIDs) != 0 {
		t.Errorf("assigned ids = %v, want empty", result.AssignedIDs)
	}
	if !result.AssignedTotal.Equal(decimal.Zero) {
		t.Errorf("assigned total = %s, want 0", result.AssignedTotal)
	}
}

func TestPickReconcilable(t *testing.T) {
	paymentDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	early := commissionFixture(1, "15.00", 0)             // 10:00，应补结
	atCutoff := commissionFixture(2, "5.00", 2*time.Hour) // 12:00，等于打款时刻，应补结
	late := commissionFixture(3, "25.00", 3*time.Hour)    // 13:00，不补结
	frozen := commissionFixture(4, "9.00", 0)
	frozen.Status = mainmodel.CommissionProcessing

	ids := PickReconcilable([]mainmodel.Commission{early, atCutoff, late, frozen}, paymentDate)

	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("reconcilable ids = %v, want [1 2]", ids)
	}
}

func TestSumAmounts(t *testing.T) {
	total := SumAmounts([]mainmodel.Commission{
		commissionFixture(1, "1.10", 0),
		commissionFixture(2, "2.20", 0),
	})
	if !total.Equal(decimal.RequireFromString("3.30")) {
		t.Errorf("total = %s, want 3.30", total)
	}
}
