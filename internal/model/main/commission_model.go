package mainmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionStatus 佣金状态
type CommissionStatus string

const (
	CommissionPending    CommissionStatus = "pending"    // 待提现
	CommissionProcessing CommissionStatus = "processing" // 已绑定提现申请，冻结中
	CommissionPaid       CommissionStatus = "paid"       // 已结算
	CommissionCancelled  CommissionStatus = "cancelled"  // 已作废（订单侧冲正）
)

// commissionTransitions 佣金状态机
// processing→pending 为唯一可逆边（提现被驳回/取消时释放）
var commissionTransitions = map[CommissionStatus][]CommissionStatus{
	CommissionPending:    {CommissionProcessing, CommissionPaid, CommissionCancelled},
	CommissionProcessing: {CommissionPending, CommissionPaid},
}

// CanTransition 校验状态迁移是否合法，paid/cancelled 为终态
func (s CommissionStatus) CanTransition(to CommissionStatus) bool {
	for _, next := range commissionTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Commission 佣金台账记录表
// withdrawal_id 仅在 processing 或经提现结算的 paid 状态下非空；记录只改状态，永不物理删除。
type Commission struct {
	ID           uint64           `gorm:"column:id;primaryKey" json:"id"`                                                                      // 主键（雪花ID）
	VendorID     uint64           `gorm:"column:vendor_id;not null;index;uniqueIndex:idx_commission_vendor_order" json:"vendorId"`             // 供应商ID
	OrderID      uint64           `gorm:"column:order_id;not null;uniqueIndex:idx_commission_vendor_order" json:"orderId"`                     // 来源订单ID
	DoctorID     *uint64          `gorm:"column:doctor_id" json:"doctorId,omitempty"`                                                          // 开方医生ID，可空
	Amount       decimal.Decimal  `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`                                             // 佣金金额
	Rate         decimal.Decimal  `gorm:"column:rate;type:decimal(5,2);not null;default:0.00" json:"rate"`                                     // 佣金比例（百分比，留档展示）
	Status       CommissionStatus `gorm:"column:status;type:varchar(16);not null;default:'pending';index:idx_commission_status" json:"status"` // 状态
	WithdrawalID *uint64          `gorm:"column:withdrawal_id;index" json:"withdrawalId,omitempty"`                                            // 绑定的提现申请ID
	CreateTime   time.Time        `gorm:"column:create_time;not null;index" json:"createTime"`                                                 // 入账时间（FIFO 排序键）
	PaymentDate  *time.Time       `gorm:"column:payment_date" json:"paymentDate,omitempty"`                                                    // 结算时间
}

func (Commission) TableName() string { return "w_commission" }
