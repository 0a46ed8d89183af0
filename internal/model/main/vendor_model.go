package mainmodel

import "time"

// Vendor 供应商主档
// 该行同时充当供应商级悲观锁锚点：创建/审批/取消提现时先 FOR UPDATE 锁定本行，
// 保证同一供应商的账本变更串行执行。
type Vendor struct {
	VendorID   uint64    `gorm:"column:v_id;primaryKey" json:"v_id"`                  // 供应商ID
	NickName   string    `gorm:"column:nickname;size:50" json:"nickname"`             // 供应商名称
	ApiKey     string    `gorm:"column:api_key;size:64" json:"-"`                     // 接口签名密钥
	Status     int8      `gorm:"column:status;not null;default:1" json:"status"`      // 状态 1=启用 0=禁用
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"createTime"` // 创建时间
}

func (Vendor) TableName() string { return "w_vendor" }
