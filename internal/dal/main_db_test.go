package dal

import (
	"strings"
	"testing"

	"wht-ledger-api/internal/config"
)

func TestMainDSN_CarriesLockWaitTimeout(t *testing.T) {
	c := config.MysqlCfg{
		Host:     "127.0.0.1",
		Port:     3306,
		Database: "wht_ledger",
		Username: "root",
		Password: "root",
		Charset:  "utf8mb4",
	}
	dsn := mainDSN(c, 5)

	// 超时必须是连接参数，连接池里每条连接都要带同一会话超时
	if !strings.Contains(dsn, "innodb_lock_wait_timeout=5") {
		t.Errorf("dsn missing lock wait timeout: %s", dsn)
	}
	if !strings.Contains(dsn, "parseTime=True") {
		t.Errorf("dsn missing parseTime: %s", dsn)
	}
	if !strings.HasPrefix(dsn, "root:root@tcp(127.0.0.1:3306)/wht_ledger?") {
		t.Errorf("unexpected dsn shape: %s", dsn)
	}
}
