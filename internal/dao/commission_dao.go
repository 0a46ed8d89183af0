package dao

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wht-ledger-api/internal/dal"
	"wht-ledger-api/internal/dto"
	mainmodel "wht-ledger-api/internal/model/main"
)

type CommissionDao struct {
	DB *gorm.DB
}

// 工厂方法：默认使用 dal.MainDB
func NewCommissionDao() *CommissionDao {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &CommissionDao{DB: dal.MainDB}
}

// 支持传入自定义 DB（比如 txDB）
func NewCommissionDaoWithDB(db *gorm.DB) *CommissionDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &CommissionDao{DB: db}
}

func (r *CommissionDao) Insert(c *mainmodel.Commission) error {
	return r.DB.Create(c).Error
}

// GetByVendorOrder 按 (供应商, 订单) 查询，幂等入账判重用
func (r *CommissionDao) GetByVendorOrder(vendorID, orderID uint64) (*mainmodel.Commission, error) {
	var c mainmodel.Commission
	err := r.DB.Where("vendor_id = ? AND order_id = ?", vendorID, orderID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get commission by order: %w", err)
	}
	return &c, nil
}

// ListPendingForUpdate 锁定并按入账时间升序返回供应商全部待提现佣金
// FOR UPDATE 覆盖整个候选集，分配期间并发的第二笔分配会阻塞到本事务提交或回滚。
// 必须在事务内调用。
func (r *CommissionDao) ListPendingForUpdate(vendorID uint64) ([]mainmodel.Commission, error) {
	var list []mainmodel.Commission
	err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("vendor_id = ? AND status = ?", vendorID, mainmodel.CommissionPending).
		Order("create_time ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list pending commissions: %w", err)
	}
	return list, nil
}

// MarkProcessing 将选中佣金整体置为冻结态并绑定提现申请
// WHERE 带状态条件 + 行数校验，任何一笔状态已变都会导致整个事务回滚。
func (r *CommissionDao) MarkProcessing(ids []uint64, withdrawalID uint64) error {
	if len(ids) == 0 {
		return nil
	}
	res := r.DB.Model(&mainmodel.Commission{}).
		Where("id IN ? AND status = ?", ids, mainmodel.CommissionPending).
		Updates(map[string]interface{}{
			"status":        mainmodel.CommissionProcessing,
			"withdrawal_id": withdrawalID,
		})
	if res.Error != nil {
		return fmt.Errorf("mark processing: %w", res.Error)
	}
	return guardAffected("mark processing", res.RowsAffected, len(ids))
}

// ReleaseByWithdrawal 释放提现申请绑定的全部冻结佣金（驳回/取消）
// processing→pending，清空 withdrawal_id，完全还原分配前状态。
func (r *CommissionDao) ReleaseByWithdrawal(withdrawalID uint64) (int64, error) {
	res := r.DB.Model(&mainmodel.Commission{}).
		Where("withdrawal_id = ? AND status = ?", withdrawalID, mainmodel.CommissionProcessing).
		Updates(map[string]interface{}{
			"status":        mainmodel.CommissionPending,
			"withdrawal_id": nil,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("release commissions: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// MarkPaidByWithdrawal 审批通过：冻结佣金整体置为已结算
func (r *CommissionDao) MarkPaidByWithdrawal(withdrawalID uint64, paymentDate time.Time) (int64, error) {
	res := r.DB.Model(&mainmodel.Commission{}).
		Where("withdrawal_id = ? AND status = ?", withdrawalID, mainmodel.CommissionProcessing).
		Updates(map[string]interface{}{
			"status":       mainmodel.CommissionPaid,
			"payment_date": paymentDate,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("mark paid by withdrawal: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// MarkPaidByIDs 对账补结算：未绑定本次提现的 pending 佣金直接置为已结算
func (r *CommissionDao) MarkPaidByIDs(ids []uint64, paymentDate time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	res := r.DB.Model(&mainmodel.Commission{}).
		Where("id IN ? AND status = ?", ids, mainmodel.CommissionPending).
		Updates(map[string]interface{}{
			"status":       mainmodel.CommissionPaid,
			"payment_date": paymentDate,
		})
	if res.Error != nil {
		return fmt.Errorf("mark paid by ids: %w", res.Error)
	}
	return guardAffected("mark paid by ids", res.RowsAffected, len(ids))
}

// ListByWithdrawal 提现申请绑定的佣金明细（审计展示，按入账时间升序）
func (r *CommissionDao) ListByWithdrawal(withdrawalID uint64) ([]mainmodel.Commission, error) {
	var list []mainmodel.Commission
	err := r.DB.Where("withdrawal_id = ?", withdrawalID).
		Order("create_time ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list commissions by withdrawal: %w", err)
	}
	return list, nil
}

// ListByVendor 供应商佣金分页（最新在前）
func (r *CommissionDao) ListByVendor(vendorID uint64, page, pageSize int) ([]mainmodel.Commission, int64, error) {
	var list []mainmodel.Commission
	var total int64
	q := r.DB.Model(&mainmodel.Commission{}).Where("vendor_id = ?", vendorID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count commissions: %w", err)
	}
	err := q.Order("create_time DESC, id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list commissions by vendor: %w", err)
	}
	return list, total, nil
}

// VendorBalance 四项口径余额聚合（单条扫描，读已提交即可，展示用途）
// 恒等式：totalEarned = totalPaid + totalProcessing + availableCommission。
// 累计口径不含已作废佣金，作废不属于余额桶位。
func (r *CommissionDao) VendorBalance(vendorID uint64) (dto.VendorBalanceVo, error) {
	type row struct {
		TotalEarned     decimal.Decimal
		TotalPaid       decimal.Decimal
		TotalProcessing decimal.Decimal
		Available       decimal.Decimal
	}
	var res row
	err := r.DB.Model(&mainmodel.Commission{}).
		Select(`
			COALESCE(SUM(CASE WHEN status <> 'cancelled' THEN amount ELSE 0 END), 0) AS total_earned,
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS total_paid,
			COALESCE(SUM(CASE WHEN status = 'processing' THEN amount ELSE 0 END), 0) AS total_processing,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS available`).
		Where("vendor_id = ?", vendorID).
		Scan(&res).Error
	if err != nil {
		return dto.VendorBalanceVo{}, fmt.Errorf("vendor balance: %w", err)
	}
	return dto.VendorBalanceVo{
		VendorID:            vendorID,
		TotalEarned:         res.TotalEarned,
		TotalPaid:           res.TotalPaid,
		TotalProcessing:     res.TotalProcessing,
		AvailableCommission: res.Available,
	}, nil
}
