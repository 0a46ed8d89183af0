package dao

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"wht-ledger-api/internal/constant"
)

// mysql 错误号
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

// TranslateDBError 将底层数据库错误转换为业务错误码
// 锁等待超时与死锁都已整体回滚，转为可重试错误；业务错误原样透传。
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	var ce constant.Error
	if errors.As(err, &ce) {
		return err
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrLockWaitTimeout, mysqlErrDeadlock:
			return constant.NewError(constant.CodeLockTimeout)
		case mysqlErrDuplicateEntry:
			return constant.NewError(constant.CodeDuplicateRequest)
		}
	}
	return constant.NewError(constant.CodeDatabaseError)
}

// IsNotFound 记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// guardAffected 带状态条件的批量更新行数校验
// 任何一行在锁竞争窗口内状态已变，更新行数就对不上，判错误让整个事务回滚。
func guardAffected(op string, got int64, want int) error {
	if got != int64(want) {
		return fmt.Errorf("%s: affected %d of %d rows", op, got, want)
	}
	return nil
}
