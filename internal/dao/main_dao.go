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

type MainDao struct {
	DB *gorm.DB
}

// 工厂方法：默认使用 dal.MainDB
func NewMainDao() *MainDao {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &MainDao{DB: dal.MainDB}
}

// 支持传入自定义 DB（比如 txDB）
func NewMainDaoWithDB(db *gorm.DB) *MainDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &MainDao{DB: db}
}

// GetVendor 查询供应商
func (r *MainDao) GetVendor(vendorID uint64) (*mainmodel.Vendor, error) {
	var v mainmodel.Vendor
	if err := r.DB.Where("v_id = ?", vendorID).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// LockVendor 锁定供应商行（FOR UPDATE）
// 供应商级串行化锚点：创建/审批/驳回/取消提现都必须先取得该锁，
// 彻底关闭“先读后写”分配竞态与 pending 查重竞态。必须在事务内调用。
func (r *MainDao) LockVendor(vendorID uint64) (*mainmodel.Vendor, error) {
	var v mainmodel.Vendor
	err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("v_id = ?", vendorID).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetConfigByKey 按键查询系统参数
func (r *MainDao) GetConfigByKey(configKey string) (*mainmodel.SysConfig, error) {
	var cfg mainmodel.SysConfig
	err := r.DB.Where("config_key = ?", configKey).Last(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get sys config: %w", err)
	}
	return &cfg, nil
}

// WithTransaction 执行事务操作
func (r *MainDao) WithTransaction(fn func(tx *gorm.DB) error) error {
	return r.DB.Transaction(fn)
}
