package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWithdrawalReq 供应商发起提现
type CreateWithdrawalReq struct {
	Amount string `json:"amount" binding:"required"` // 字符串金额，服务端转 decimal
	Notes  string `json:"notes,omitempty"`
}

// CreateWithdrawalResp 提现创建响应
type CreateWithdrawalResp struct {
	WithdrawalId  uint64          `json:"withdrawalId"`
	Amount        decimal.Decimal `json:"amount"`        // 申请金额
	AssignedTotal decimal.Decimal `json:"assignedTotal"` // 实际冻结佣金合计（≥ 申请金额）
	RequestDate   time.Time       `json:"requestDate"`
}

// ApproveWithdrawalReq 管理员审批通过
type ApproveWithdrawalReq struct {
	PaymentMethod  string `json:"paymentMethod" binding:"required"`
	PaymentDetails string `json:"paymentDetails,omitempty"`
}

// RejectWithdrawalReq 管理员驳回
type RejectWithdrawalReq struct {
	Reason string `json:"reason" binding:"required"`
}

// WithdrawalVo 提现申请展示对象
type WithdrawalVo struct {
	ID             uint64          `json:"id"`
	VendorID       uint64          `json:"vendorId"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	RequestDate    time.Time       `json:"requestDate"`
	PaymentDate    *time.Time      `json:"paymentDate,omitempty"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	PaymentDetails string          `json:"paymentDetails,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	ProcessedBy    *uint64         `json:"processedBy,omitempty"`
}

// PageReq 分页请求
type PageReq struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// PageVo 分页响应
type PageVo struct {
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Total    int64       `json:"total"`
	List     interface{} `json:"list"`
}
