package constant

// 业务级错误码 (3xxx)

// 供应商相关错误码
const (
	CodeVendorNotFound = 3000 // 供应商不存在或未找到，请检查供应商编号是否正确
	CodeVendorDisabled = 3001 // 供应商账号已被禁用，暂时无法发起结算操作
)

// 佣金相关错误码
const (
	CodeCommissionNotFound      = 3100 // 佣金记录不存在，请检查佣金编号是否正确
	CodeCommissionAmountInvalid = 3101 // 佣金金额无效，金额必须大于零
	CodeCommissionDuplicate     = 3102 // 该订单佣金已入账，请勿重复入账
	CodeCommissionStateInvalid  = 3104 // 佣金状态无效，无法进行当前操作
)

// 提现相关错误码
const (
	CodeWithdrawalNotFound      = 3200 // 提现申请不存在，请检查申请编号是否正确
	CodeWithdrawalAmountInvalid = 3201 // 提现金额无效，金额必须大于零
	CodeWithdrawalPendingExists = 3202 // 已存在待审核的提现申请，请先处理完成后再发起
	CodeInsufficientCommission  = 3203 // 可提现佣金不足，无法覆盖申请金额
	CodeWithdrawalStateInvalid  = 3204 // 提现申请状态无效，仅待审核状态可进行该操作
	CodeWithdrawalOwnerMismatch = 3205 // 提现申请不属于当前供应商，无法操作
)

// 持久化相关错误码
const (
	CodeLockTimeout = 3300 // 行锁等待超时或发生死锁，事务已回滚，可稍后重试一次
)
