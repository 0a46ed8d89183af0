package dto

// CommissionAccruedMsg 订单侧佣金入账事件（commission_accrued 队列）
type CommissionAccruedMsg struct {
	OrderID    uint64  `json:"order_id"`
	VendorID   uint64  `json:"vendor_id"`
	DoctorID   *uint64 `json:"doctor_id,omitempty"`
	Amount     string  `json:"amount"`
	Rate       string  `json:"rate,omitempty"`
	Ts         int64   `json:"ts"`
	RetryCount int     `json:"retry_count"`
}

// WithdrawalSettledEvent 提现审批结果事件（通知服务消费，账本本身不发邮件）
type WithdrawalSettledEvent struct {
	WithdrawalID  uint64 `json:"withdrawal_id"`
	VendorID      uint64 `json:"vendor_id"`
	Amount        string `json:"amount"`
	Status        string `json:"status"` // completed / rejected
	PaymentMethod string `json:"payment_method,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Ts            int64  `json:"ts"`
	Sign          string `json:"sign"` // 按供应商密钥的参数签名，通知服务据此校验
}
