package dal

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gorm/logger"

	"wht-ledger-api/internal/config"
	mainmodel "wht-ledger-api/internal/model/main"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var MainDB *gorm.DB

// mainDSN 构造主库 DSN
// 行锁等待超时作为 DSN 参数下发：go-sql-driver 会在每条新连接上
// 以会话变量形式执行未知参数，连接池里的每条连接都带同一超时。
func mainDSN(c config.MysqlCfg, lockTimeoutSec int) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local&innodb_lock_wait_timeout=%d",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.Charset, lockTimeoutSec)
}

func InitMainDB() {
	c := config.C.MysqlMain
	dsn := mainDSN(c, config.C.Ledger.LockTimeoutSec)
	// 配置日志输出
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Millisecond, // 慢 SQL 阈值
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		log.Fatalf("connect main db failed: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(2 * time.Hour)

	if err := db.AutoMigrate(
		&mainmodel.Vendor{},
		&mainmodel.Commission{},
		&mainmodel.WithdrawalRequest{},
		&mainmodel.SysConfig{},
	); err != nil {
		log.Fatalf("migrate ledger schema failed: %v", err)
	}

	MainDB = db
}
