package constant

// ErrorInfo 错误信息结构
type ErrorInfo struct {
	CN string `json:"cn"` // 中文错误信息
	EN string `json:"en"` // 英文错误信息
}

// ErrorMessages 错误信息映射
var ErrorMessages = map[int]ErrorInfo{
	// 系统错误
	CodeSuccess:       {"操作成功", "Success"},
	CodeSystemError:   {"系统错误", "System error"},
	CodeDatabaseError: {"数据库错误", "Database error"},

	// 参数错误
	CodeInvalidParams:    {"参数格式错误", "Invalid params"},
	CodeMissingParams:    {"缺少必要参数", "Missing params"},
	CodeDuplicateRequest: {"重复请求", "Duplicate request"},

	// 认证授权错误
	CodeUnauthorized:     {"未授权访问", "Unauthorized"},
	CodeSignatureError:   {"签名验证失败", "Signature error"},
	CodeIPNotWhitelisted: {"IP不在白名单内", "IP not whitelisted"},

	// 供应商相关错误
	CodeVendorNotFound: {"供应商不存在", "Vendor not found"},
	CodeVendorDisabled: {"供应商已被禁用", "Vendor disabled"},

	// 佣金相关错误
	CodeCommissionNotFound:      {"佣金记录不存在", "Commission not found"},
	CodeCommissionAmountInvalid: {"佣金金额无效", "Commission amount invalid"},
	CodeCommissionDuplicate:     {"佣金已入账", "Commission already recorded"},
	CodeCommissionStateInvalid:  {"佣金状态无效", "Commission state invalid"},

	// 提现相关错误
	CodeWithdrawalNotFound:      {"提现申请不存在", "Withdrawal not found"},
	CodeWithdrawalAmountInvalid: {"提现金额无效", "Withdrawal amount invalid"},
	CodeWithdrawalPendingExists: {"已存在待审核提现申请", "Pending withdrawal already exists"},
	CodeInsufficientCommission:  {"可提现佣金不足", "Insufficient available commission"},
	CodeWithdrawalStateInvalid:  {"提现申请状态无效", "Withdrawal state invalid"},
	CodeWithdrawalOwnerMismatch: {"提现申请不属于当前供应商", "Withdrawal owner mismatch"},

	// 持久化相关错误
	CodeLockTimeout: {"行锁等待超时，请稍后重试", "Lock wait timeout, retryable"},
}
