package dao

import (
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"

	"wht-ledger-api/internal/constant"
)

func TestTranslateDBError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want int
	}{
		{"lock wait timeout", &mysql.MySQLError{Number: 1205}, constant.CodeLockTimeout},
		{"deadlock", &mysql.MySQLError{Number: 1213}, constant.CodeLockTimeout},
		{"duplicate entry", &mysql.MySQLError{Number: 1062}, constant.CodeDuplicateRequest},
		{"other mysql error", &mysql.MySQLError{Number: 1064}, constant.CodeDatabaseError},
		{"plain error", fmt.Errorf("boom"), constant.CodeDatabaseError},
		{"wrapped mysql error", fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1205}), constant.CodeLockTimeout},
	}
	for _, tc := range cases {
		got := constant.CodeOf(TranslateDBError(tc.in))
		if got != tc.want {
			t.Errorf("%s: code = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestGuardAffected(t *testing.T) {
	if err := guardAffected("mark processing", 3, 3); err != nil {
		t.Errorf("full match must pass, got %v", err)
	}
	// 并发竞争者抢先改走了部分行：更新行数对不上即判错误，整个事务回滚
	if err := guardAffected("mark processing", 2, 3); err == nil {
		t.Errorf("partial update must fail")
	}
	// 申请行已离开 pending（并发审批/取消的后到方）
	if err := guardAffected("update withdrawal", 0, 1); err == nil {
		t.Errorf("zero affected rows must fail")
	}
}

func TestTranslateDBError_PassThrough(t *testing.T) {
	if TranslateDBError(nil) != nil {
		t.Errorf("nil must stay nil")
	}
	biz := constant.NewError(constant.CodeInsufficientCommission)
	if got := TranslateDBError(biz); got != biz {
		t.Errorf("business error must pass through unchanged")
	}
}
