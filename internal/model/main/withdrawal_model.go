package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalStatus 提现申请状态
type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"   // 待审核（唯一非终态）
	WithdrawalCompleted WithdrawalStatus = "completed" // 审批通过，已打款
	WithdrawalRejected  WithdrawalStatus = "rejected"  // 审批驳回
	WithdrawalCancelled WithdrawalStatus = "cancelled" // 供应商主动取消
)

// withdrawalTransitions 提现状态机，离开 pending 后不再回转
var withdrawalTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalPending: {WithdrawalCompleted, WithdrawalRejected, WithdrawalCancelled},
}

// CanTransition 校验状态迁移是否合法
func (s WithdrawalStatus) CanTransition(to WithdrawalStatus) bool {
	for _, next := range withdrawalTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal 是否终态
func (s WithdrawalStatus) IsTerminal() bool {
	return len(withdrawalTransitions[s]) == 0
}

// WithdrawalRequest 提现申请表
// 业务约束：同一供应商同一时刻至多一条 pending 记录（由供应商行锁 + 事务内查重保证）。
type WithdrawalRequest struct {
	ID             uint64           `gorm:"column:id;primaryKey" json:"id"`                                                                      // 主键（雪花ID）
	VendorID       uint64           `gorm:"column:vendor_id;not null;index:idx_withdrawal_vendor_status" json:"vendorId"`                        // 供应商ID
	Amount         decimal.Decimal  `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`                                             // 申请金额
	Status         WithdrawalStatus `gorm:"column:status;type:varchar(16);not null;default:'pending';index:idx_withdrawal_vendor_status" json:"status"` // 状态
	RequestDate    time.Time        `gorm:"column:request_date;not null;index" json:"requestDate"`                                               // 申请时间
	PaymentDate    *time.Time       `gorm:"column:payment_date" json:"paymentDate,omitempty"`                                                    // 打款时间
	PaymentMethod  string           `gorm:"column:payment_method;size:30" json:"paymentMethod,omitempty"`                                        // 打款方式（pix/ted 等）
	PaymentDetails string           `gorm:"column:payment_details;size:255" json:"paymentDetails,omitempty"`                                     // 打款凭证/账户信息
	Notes          string           `gorm:"column:notes;size:255" json:"notes,omitempty"`                                                        // 备注（驳回原因等）
	ProcessedBy    *uint64          `gorm:"column:processed_by" json:"processedBy,omitempty"`                                                    // 审批管理员ID
}

func (WithdrawalRequest) TableName() string { return "w_withdrawal" }
