package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordCommissionReq 佣金入账请求（订单侧佣金结算后调用）
type RecordCommissionReq struct {
	OrderId  uint64  `json:"orderId" binding:"required"`
	VendorId uint64  `json:"vendorId" binding:"required"`
	DoctorId *uint64 `json:"doctorId,omitempty"`
	Amount   string  `json:"amount" binding:"required"` // 字符串金额，服务端转 decimal
	Rate     string  `json:"rate,omitempty"`            // 计佣比例（百分比，留档）
}

// RecordCommissionResp 佣金入账响应
type RecordCommissionResp struct {
	CommissionId uint64 `json:"commissionId"`
	Duplicate    bool   `json:"duplicate"` // 幂等命中：该订单佣金此前已入账
}

// CommissionVo 佣金展示对象
type CommissionVo struct {
	ID           uint64          `json:"id"`
	OrderID      uint64          `json:"orderId"`
	DoctorID     *uint64         `json:"doctorId,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Rate         decimal.Decimal `json:"rate"`
	Status       string          `json:"status"`
	WithdrawalID *uint64         `json:"withdrawalId,omitempty"`
	CreateTime   time.Time       `json:"createTime"`
	PaymentDate  *time.Time      `json:"paymentDate,omitempty"`
}

// VendorBalanceVo 供应商余额聚合（派生视图，不落库）
type VendorBalanceVo struct {
	VendorID            uint64          `json:"vendorId"`
	TotalEarned         decimal.Decimal `json:"totalEarned"`         // 累计佣金
	TotalPaid           decimal.Decimal `json:"totalPaid"`           // 已结算
	TotalProcessing     decimal.Decimal `json:"totalProcessing"`     // 冻结中
	AvailableCommission decimal.Decimal `json:"availableCommission"` // 可提现
	MinWithdrawal       string          `json:"minWithdrawal,omitempty"` // 最低提现金额提示（仅展示，不做校验）
}
