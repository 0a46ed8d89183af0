package config

import (
	"flag"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}
type MysqlCfg struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Database     string `mapstructure:"database"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}
type RabbitCfg struct {
	URL string `mapstructure:"url"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
type SecurityCfg struct {
	InternalToken string `mapstructure:"internalToken"`
	AdminToken    string `mapstructure:"adminToken"`
}
type LedgerCfg struct {
	LockTimeoutSec     int `mapstructure:"lockTimeoutSec"`     // innodb_lock_wait_timeout（会话级）
	BalanceCacheSec    int `mapstructure:"balanceCacheSec"`    // 余额展示缓存时间
	CreateGuardSec     int `mapstructure:"createGuardSec"`     // 提现重复提交保护窗口
	PendingPageSizeMax int `mapstructure:"pendingPageSizeMax"` // 待审核列表单页上限
}
type ProjectCfg struct {
	Name string `mapstructure:"name"`
}

type Root struct {
	Server    ServerCfg   `mapstructure:"server"`
	MysqlMain MysqlCfg    `mapstructure:"mysql_main"`
	RabbitMQ  RabbitCfg   `mapstructure:"rabbitmq"`
	Redis     RedisCfg    `mapstructure:"redis"`
	Security  SecurityCfg `mapstructure:"security"`
	Ledger    LedgerCfg   `mapstructure:"ledger"`
	Project   ProjectCfg  `mapstructure:"project"`
}

var C Root

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	v := viper.New()
	v.SetConfigFile("config/config." + *env + ".yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config file failed: %v", err)
	}
	if err := v.Unmarshal(&C); err != nil {
		log.Fatalf("unmarshal config failed: %v", err)
	}

	ApplyDefaults(&C)
}

// ApplyDefaults 填充缺省配置
func ApplyDefaults(c *Root) {
	if strings.TrimSpace(c.Server.Port) == "" {
		c.Server.Port = "8080"
	}
	if strings.TrimSpace(c.Project.Name) == "" {
		c.Project.Name = "wht-ledger"
	}
	if c.Ledger.LockTimeoutSec <= 0 {
		c.Ledger.LockTimeoutSec = 5
	}
	if c.Ledger.BalanceCacheSec <= 0 {
		c.Ledger.BalanceCacheSec = 30
	}
	if c.Ledger.CreateGuardSec <= 0 {
		c.Ledger.CreateGuardSec = 10
	}
	if c.Ledger.PendingPageSizeMax <= 0 {
		c.Ledger.PendingPageSizeMax = 100
	}
}
