package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	mainmodel "wht-ledger-api/internal/model/main"
)

// AllocationResult 佣金分配结果
type AllocationResult struct {
	AssignedIDs   []uint64        // 被选中冻结的佣金ID（按入账时间先后）
	AssignedTotal decimal.Decimal // 冻结佣金合计
}

// Covers 冻结合计是否覆盖申请金额
func (r AllocationResult) Covers(requested decimal.Decimal) bool {
	return r.AssignedTotal.GreaterThanOrEqual(requested)
}

// PickFIFO 先进先出挑选待提现佣金
// pending 必须已按入账时间升序排列（最老的欠款最先结）。佣金是不可拆分的整笔分配单元：
// 每笔先纳入，再判断累计是否已覆盖申请金额，一旦覆盖立即停止，
// 因此超出部分必然小于最后一笔纳入佣金的金额。
// 待选列表为空或全量累计仍不足时，返回的结果覆盖不了申请金额，由调用方整体回滚。
func PickFIFO(pending []mainmodel.Commission, requested decimal.Decimal) AllocationResult {
	result := AllocationResult{AssignedTotal: decimal.Zero}
	for _, c := range pending {
		result.AssignedIDs = append(result.AssignedIDs, c.ID)
		result.AssignedTotal = result.AssignedTotal.Add(c.Amount)
		if result.AssignedTotal.GreaterThanOrEqual(requested) {
			break
		}
	}
	return result
}

// PickReconcilable 审批通过时的对账补结算：
// 同一供应商在打款时刻之前入账、且仍处于 pending 的佣金一并视为已结算（关账口径）。
// 注意：该口径可能使实际打款额大于申请额，结算侧会单独告警留痕。
func PickReconcilable(pending []mainmodel.Commission, paymentDate time.Time) []uint64 {
	var ids []uint64
	for _, c := range pending {
		if c.Status != mainmodel.CommissionPending {
			continue
		}
		if !c.CreateTime.After(paymentDate) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// SumAmounts 金额合计（审计与告警用）
func SumAmounts(commissions []mainmodel.Commission) decimal.Decimal {
	total := decimal.Zero
	for _, c := range commissions {
		total = total.Add(c.Amount)
	}
	return total
}
