package service

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"wht-ledger-api/internal/config"
	"wht-ledger-api/internal/constant"
	"wht-ledger-api/internal/dal"
	"wht-ledger-api/internal/dao"
	"wht-ledger-api/internal/dto"
	"wht-ledger-api/internal/idgen"
	mainmodel "wht-ledger-api/internal/model/main"
	"wht-ledger-api/internal/system"
	rediskey "wht-ledger-api/internal/types/redis-key"
)

// CommissionService 佣金台账服务
type CommissionService struct {
	mainDao       *dao.MainDao
	commissionDao *dao.CommissionDao
}

func NewCommissionService() *CommissionService {
	return &CommissionService{
		mainDao:       dao.NewMainDao(),
		commissionDao: dao.NewCommissionDao(),
	}
}

// Record 佣金入账（订单侧佣金结算后调用，HTTP 与 MQ 共用入口）
// 按 (供应商, 订单) 幂等：重复投递返回已有记录，不产生第二笔。
func (s *CommissionService) Record(req dto.RecordCommissionReq) (dto.RecordCommissionResp, error) {
	var resp dto.RecordCommissionResp

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return resp, constant.NewError(constant.CodeCommissionAmountInvalid)
	}
	rate := decimal.Zero
	if strings.TrimSpace(req.Rate) != "" {
		rate, err = decimal.NewFromString(strings.TrimSpace(req.Rate))
		if err != nil {
			return resp, constant.NewError(constant.CodeInvalidParams)
		}
	}

	vendor, err := s.mainDao.GetVendor(req.VendorId)
	if err != nil {
		if dao.IsNotFound(err) {
			return resp, constant.NewError(constant.CodeVendorNotFound)
		}
		return resp, dao.TranslateDBError(err)
	}
	if vendor.Status != 1 {
		return resp, constant.NewError(constant.CodeVendorDisabled)
	}

	err = s.mainDao.WithTransaction(func(tx *gorm.DB) error {
		txCommission := dao.NewCommissionDaoWithDB(tx)

		existing, err := txCommission.GetByVendorOrder(req.VendorId, req.OrderId)
		if err != nil {
			return err
		}
		if existing != nil {
			// 幂等命中
			resp.CommissionId = existing.ID
			resp.Duplicate = true
			return nil
		}

		c := mainmodel.Commission{
			ID:         idgen.NewCommissionID(),
			VendorID:   req.VendorId,
			OrderID:    req.OrderId,
			DoctorID:   req.DoctorId,
			Amount:     amount,
			Rate:       rate,
			Status:     mainmodel.CommissionPending,
			CreateTime: time.Now(),
		}
		if err := txCommission.Insert(&c); err != nil {
			return err
		}
		resp.CommissionId = c.ID
		return nil
	})
	if err != nil {
		return resp, dao.TranslateDBError(err)
	}

	if !resp.Duplicate {
		InvalidateBalanceCache(req.VendorId)
		log.Printf("佣金入账: vendor=%d order=%d commission=%d amount=%s", req.VendorId, req.OrderId, resp.CommissionId, amount)
	}
	return resp, nil
}

// Balance 供应商余额聚合（带 redis 展示缓存，精确一致性不作要求）
func (s *CommissionService) Balance(vendorID uint64) (dto.VendorBalanceVo, error) {
	key := rediskey.VendorBalanceKey(vendorID)
	if cached, _ := dal.RedisClient.Get(dal.RedisCtx, key).Result(); cached != "" {
		var vo dto.VendorBalanceVo
		if err := json.Unmarshal([]byte(cached), &vo); err == nil {
			return vo, nil
		}
	}

	vo, err := s.commissionDao.VendorBalance(vendorID)
	if err != nil {
		return vo, dao.TranslateDBError(err)
	}
	vo.MinWithdrawal = system.MinWithdrawalDisplay

	if b, err := json.Marshal(&vo); err == nil {
		ttl := time.Duration(config.C.Ledger.BalanceCacheSec) * time.Second
		dal.RedisClient.Set(dal.RedisCtx, key, string(b), ttl)
	}
	return vo, nil
}

// ListByVendor 供应商佣金分页
func (s *CommissionService) ListByVendor(vendorID uint64, page dto.PageReq) (dto.PageVo, error) {
	p, size := normalizePage(page)
	list, total, err := s.commissionDao.ListByVendor(vendorID, p, size)
	if err != nil {
		return dto.PageVo{}, dao.TranslateDBError(err)
	}
	return dto.PageVo{Page: p, PageSize: size, Total: total, List: toCommissionVos(list)}, nil
}

// ListForWithdrawal 提现申请绑定佣金明细（审计展示）
func (s *CommissionService) ListForWithdrawal(withdrawalID uint64) ([]dto.CommissionVo, error) {
	list, err := s.commissionDao.ListByWithdrawal(withdrawalID)
	if err != nil {
		return nil, dao.TranslateDBError(err)
	}
	return toCommissionVos(list), nil
}

// InvalidateBalanceCache 账本变更后使余额缓存失效
func InvalidateBalanceCache(vendorID uint64) {
	if dal.RedisClient == nil {
		return
	}
	dal.RedisClient.Del(dal.RedisCtx, rediskey.VendorBalanceKey(vendorID))
}

func toCommissionVos(list []mainmodel.Commission) []dto.CommissionVo {
	vos := make([]dto.CommissionVo, 0, len(list))
	for _, c := range list {
		vos = append(vos, dto.CommissionVo{
			ID:           c.ID,
			OrderID:      c.OrderID,
			DoctorID:     c.DoctorID,
			Amount:       c.Amount,
			Rate:         c.Rate,
			Status:       string(c.Status),
			WithdrawalID: c.WithdrawalID,
			CreateTime:   c.CreateTime,
			PaymentDate:  c.PaymentDate,
		})
	}
	return vos
}

func normalizePage(page dto.PageReq) (int, int) {
	p, size := page.Page, page.PageSize
	if p <= 0 {
		p = 1
	}
	if size <= 0 {
		size = 20
	}
	if max := config.C.Ledger.PendingPageSizeMax; size > max {
		size = max
	}
	return p, size
}
