package dao

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wht-ledger-api/internal/dal"
	mainmodel "wht-ledger-api/internal/model/main"
)

type WithdrawalDao struct {
	DB *gorm.DB
}

// 工厂方法：默认使用 dal.MainDB
func NewWithdrawalDao() *WithdrawalDao {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &WithdrawalDao{DB: dal.MainDB}
}

// 支持传入自定义 DB（比如 txDB）
func NewWithdrawalDaoWithDB(db *gorm.DB) *WithdrawalDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &WithdrawalDao{DB: db}
}

func (r *WithdrawalDao) Insert(w *mainmodel.WithdrawalRequest) error {
	return r.DB.Create(w).Error
}

func (r *WithdrawalDao) GetByID(id uint64) (*mainmodel.WithdrawalRequest, error) {
	var w mainmodel.WithdrawalRequest
	err := r.DB.Where("id = ?", id).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	return &w, nil
}

// GetForUpdate 锁定提现申请行（FOR UPDATE），必须在事务内调用
func (r *WithdrawalDao) GetForUpdate(id uint64) (*mainmodel.WithdrawalRequest, error) {
	var w mainmodel.WithdrawalRequest
	err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get withdrawal for update: %w", err)
	}
	return &w, nil
}

// HasPending 供应商是否已存在待审核申请
// 业务唯一约束（每供应商至多一条 pending）依赖调用方已持有供应商行锁。
func (r *WithdrawalDao) HasPending(vendorID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&mainmodel.WithdrawalRequest{}).
		Where("vendor_id = ? AND status = ?", vendorID, mainmodel.WithdrawalPending).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count pending withdrawals: %w", err)
	}
	return count > 0, nil
}

// UpdateFromPending 仅当仍处于 pending 时更新（带状态条件 + 行数校验）
func (r *WithdrawalDao) UpdateFromPending(id uint64, updates map[string]interface{}) error {
	res := r.DB.Model(&mainmodel.WithdrawalRequest{}).
		Where("id = ? AND status = ?", id, mainmodel.WithdrawalPending).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update withdrawal: %w", res.Error)
	}
	return guardAffected("update withdrawal", res.RowsAffected, 1)
}

// ListPendingPage 待审核申请分页，最早申请在前
func (r *WithdrawalDao) ListPendingPage(page, pageSize int) ([]mainmodel.WithdrawalRequest, int64, error) {
	var list []mainmodel.WithdrawalRequest
	var total int64
	q := r.DB.Model(&mainmodel.WithdrawalRequest{}).
		Where("status = ?", mainmodel.WithdrawalPending)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count pending withdrawals: %w", err)
	}
	err := q.Order("request_date ASC, id ASC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list pending withdrawals: %w", err)
	}
	return list, total, nil
}

// ListByVendor 供应商提现历史（最新在前）
func (r *WithdrawalDao) ListByVendor(vendorID uint64, page, pageSize int) ([]mainmodel.WithdrawalRequest, int64, error) {
	var list []mainmodel.WithdrawalRequest
	var total int64
	q := r.DB.Model(&mainmodel.WithdrawalRequest{}).Where("vendor_id = ?", vendorID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count withdrawals: %w", err)
	}
	err := q.Order("request_date DESC, id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list withdrawals by vendor: %w", err)
	}
	return list, total, nil
}
