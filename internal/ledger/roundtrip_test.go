package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	mainmodel "wht-ledger-api/internal/model/main"
)

// freeze 按分配结果冻结佣金（镜像 MarkProcessing 的写入）
func freeze(commissions []mainmodel.Commission, result AllocationResult, withdrawalID uint64) []mainmodel.Commission {
	out := make([]mainmodel.Commission, len(commissions))
	copy(out, commissions)
	for i := range out {
		for _, id := range result.AssignedIDs {
			if out[i].ID == id {
				out[i].Status = mainmodel.CommissionProcessing
				wid := withdrawalID
				out[i].WithdrawalID = &wid
			}
		}
	}
	return out
}

// release 释放某笔提现冻结的佣金（镜像 ReleaseByWithdrawal 的写入）
func release(commissions []mainmodel.Commission, withdrawalID uint64) []mainmodel.Commission {
	out := make([]mainmodel.Commission, len(commissions))
	copy(out, commissions)
	for i := range out {
		if out[i].Status == mainmodel.CommissionProcessing &&
			out[i].WithdrawalID != nil && *out[i].WithdrawalID == withdrawalID {
			out[i].Status = mainmodel.CommissionPending
			out[i].WithdrawalID = nil
		}
	}
	return out
}

func availableOf(commissions []mainmodel.Commission) decimal.Decimal {
	total := decimal.Zero
	for _, c := range commissions {
		if c.Status == mainmodel.CommissionPending {
			total = total.Add(c.Amount)
		}
	}
	return total
}

// 分配后驳回/取消释放，账本必须完整回到分配前的状态：
// 每笔佣金回到 pending、withdrawal_id 清空、可提现余额复原。
func TestAllocateReleaseRoundTrip(t *testing.T) {
	pending := []mainmodel.Commission{
		commissionFixture(1, "30.00", 0),
		commissionFixture(2, "40.00", time.Hour),
		commissionFixture(3, "20.00", 2*time.Hour),
	}
	const withdrawalID = uint64(9001)
	requested := decimal.RequireFromString("50.00")

	before := availableOf(pending)
	if !before.Equal(decimal.RequireFromString("90.00")) {
		t.Fatalf("fixture available = %s, want 90.00", before)
	}

	result := PickFIFO(pending, requested)
	frozen := freeze(pending, result, withdrawalID)

	// 冻结后可提现余额下降到 20
	if got := availableOf(frozen); !got.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("available after freeze = %s, want 20.00", got)
	}
	for _, c := range frozen {
		if c.Status == mainmodel.CommissionProcessing {
			if c.WithdrawalID == nil || *c.WithdrawalID != withdrawalID {
				t.Errorf("frozen commission %d must carry withdrawal id", c.ID)
			}
		}
	}

	released := release(frozen, withdrawalID)

	if got := availableOf(released); !got.Equal(before) {
		t.Errorf("available after release = %s, want %s", got, before)
	}
	for i, c := range released {
		if c.Status != pending[i].Status {
			t.Errorf("commission %d: status = %s, want %s", c.ID, c.Status, pending[i].Status)
		}
		if c.WithdrawalID != nil {
			t.Errorf("commission %d: withdrawal id must be cleared", c.ID)
		}
	}

	// 释放后可重新全额分配
	again := PickFIFO(released, before)
	if !again.Covers(before) {
		t.Errorf("released commissions must be allocatable again")
	}
}

// 释放只作用于本申请冻结的佣金，别的申请的冻结集不受影响
func TestRelease_ScopedToWithdrawal(t *testing.T) {
	other := commissionFixture(4, "10.00", 0)
	other.Status = mainmodel.CommissionProcessing
	otherWid := uint64(7777)
	other.WithdrawalID = &otherWid

	commissions := []mainmodel.Commission{
		commissionFixture(1, "30.00", 0),
		other,
	}
	result := PickFIFO([]mainmodel.Commission{commissions[0]}, decimal.RequireFromString("30.00"))
	frozen := freeze(commissions, result, 9001)

	released := release(frozen, 9001)

	if released[1].Status != mainmodel.CommissionProcessing {
		t.Errorf("foreign frozen commission must stay frozen")
	}
	if released[1].WithdrawalID == nil || *released[1].WithdrawalID != otherWid {
		t.Errorf("foreign withdrawal binding must survive")
	}
	if released[0].Status != mainmodel.CommissionPending || released[0].WithdrawalID != nil {
		t.Errorf("own frozen commission must be fully released")
	}
}
