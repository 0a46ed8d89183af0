package rediskey

import (
	"fmt"

	"wht-ledger-api/internal/config"
)

// 配置表数据 redis key
func SysConfigKey() string {
	return config.C.Project.Name + ":system:config"
}

// 供应商余额展示缓存 key
func VendorBalanceKey(vendorID uint64) string {
	return fmt.Sprintf("%s:balance:%d", config.C.Project.Name, vendorID)
}

// 提现创建重复提交保护 key
func WithdrawCreateGuardKey(vendorID uint64) string {
	return fmt.Sprintf("%s:withdraw:guard:%d", config.C.Project.Name, vendorID)
}
