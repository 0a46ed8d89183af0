package mainmodel

import "testing"

func TestWithdrawalTransitions(t *testing.T) {
	cases := []struct {
		from, to WithdrawalStatus
		ok       bool
	}{
		{WithdrawalPending, WithdrawalCompleted, true},
		{WithdrawalPending, WithdrawalRejected, true},
		{WithdrawalPending, WithdrawalCancelled, true},
		// 终态不可再迁移
		{WithdrawalCompleted, WithdrawalPending, false},
		{WithdrawalRejected, WithdrawalCompleted, false},
		{WithdrawalCancelled, WithdrawalCancelled, false},
		{WithdrawalRejected, WithdrawalRejected, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.ok {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestWithdrawalIsTerminal(t *testing.T) {
	if WithdrawalPending.IsTerminal() {
		t.Errorf("pending must not be terminal")
	}
	for _, s := range []WithdrawalStatus{WithdrawalCompleted, WithdrawalRejected, WithdrawalCancelled} {
		if !s.IsTerminal() {
			t.Errorf("%s must be terminal", s)
		}
	}
}

func TestCommissionTransitions(t *testing.T) {
	cases := []struct {
		from, to CommissionStatus
		ok       bool
	}{
		{CommissionPending, CommissionProcessing, true},
		{CommissionProcessing, CommissionPending, true}, // 驳回/取消释放
		{CommissionProcessing, CommissionPaid, true},    // 审批结算
		{CommissionPending, CommissionPaid, true},       // 对账补结算
		{CommissionPending, CommissionCancelled, true},
		{CommissionPaid, CommissionPending, false},
		{CommissionPaid, CommissionProcessing, false},
		{CommissionCancelled, CommissionPending, false},
		{CommissionProcessing, CommissionCancelled, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.ok {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}
