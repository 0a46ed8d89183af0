package mainmodel

import "time"

// SysConfig 系统参数表
// 存放业务常量（如最低提现金额展示值、告警群ID），由 system 包带缓存读取。
type SysConfig struct {
	ConfigId    int       `gorm:"column:config_id;primaryKey;autoIncrement"`  // 参数ID
	ConfigName  string    `gorm:"column:config_name;size:100"`                // 参数名称
	ConfigKey   string    `gorm:"column:config_key;size:100;uniqueIndex"`     // 参数键
	ConfigValue string    `gorm:"column:config_value;size:500"`               // 参数值
	ConfigType  string    `gorm:"column:config_type;default:N"`               // 是否内置 Y/N
	CreateTime  time.Time `gorm:"column:create_time;autoCreateTime"`          // 创建时间
	UpdateTime  time.Time `gorm:"column:update_time;autoUpdateTime"`          // 更新时间
	Remark      string    `gorm:"column:remark;size:255"`                     // 备注
}

func (SysConfig) TableName() string {
	return "sys_config"
}
