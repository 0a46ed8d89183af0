package service

import (
	"log"
	"runtime/debug"
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
	"wht-ledger-api/internal/ledger"
	mainmodel "wht-ledger-api/internal/model/main"
	"wht-ledger-api/internal/notify"
	rediskey "wht-ledger-api/internal/types/redis-key"
	"wht-ledger-api/internal/utils"
)

// WithdrawalService 提现申请服务（创建/取消/查询）
type WithdrawalService struct {
	mainDao       *dao.MainDao
	commissionDao *dao.CommissionDao
	withdrawalDao *dao.WithdrawalDao
}

func NewWithdrawalService() *WithdrawalService {
	return &WithdrawalService{
		mainDao:       dao.NewMainDao(),
		commissionDao: dao.NewCommissionDao(),
		withdrawalDao: dao.NewWithdrawalDao(),
	}
}

// Create 供应商发起提现
// 全流程单事务：锁供应商行 → 查重 pending → 事务内复核可提现余额 → 建单 → FIFO 冻结佣金。
// 分配不足或任何一步失败整体回滚，绝不落下资金不足的提现单。
func (s *WithdrawalService) Create(vendorID uint64, req dto.CreateWithdrawalReq) (resp dto.CreateWithdrawalResp, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Withdrawal Create panic: %v\n%s", r, debug.Stack())
			err = constant.NewError(constant.CodeSystemError)
		}
	}()

	amount, perr := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if perr != nil || amount.LessThanOrEqual(decimal.Zero) {
		return resp, constant.NewError(constant.CodeWithdrawalAmountInvalid)
	}

	// 重复提交保护：同一供应商短窗口内只放行一次创建请求
	guardKey := rediskey.WithdrawCreateGuardKey(vendorID)
	guardTTL := time.Duration(config.C.Ledger.CreateGuardSec) * time.Second
	if ok, _ := dal.RedisClient.SetNX(dal.RedisCtx, guardKey, 1, guardTTL).Result(); !ok {
		return resp, constant.NewError(constant.CodeDuplicateRequest)
	}
	defer dal.RedisClient.Del(dal.RedisCtx, guardKey)

	err = s.mainDao.WithTransaction(func(tx *gorm.DB) error {
		txMain := dao.NewMainDaoWithDB(tx)
		txCommission := dao.NewCommissionDaoWithDB(tx)
		txWithdrawal := dao.NewWithdrawalDaoWithDB(tx)

		// 供应商行锁：同一供应商的创建/审批/取消在此串行
		vendor, err := txMain.LockVendor(vendorID)
		if err != nil {
			if dao.IsNotFound(err) {
				return constant.NewError(constant.CodeVendorNotFound)
			}
			return err
		}
		if vendor.Status != 1 {
			return constant.NewError(constant.CodeVendorDisabled)
		}

		// 每供应商至多一条待审核申请
		hasPending, err := txWithdrawal.HasPending(vendorID)
		if err != nil {
			return err
		}
		if hasPending {
			return constant.NewError(constant.CodeWithdrawalPendingExists)
		}

		// 候选佣金整体 FOR UPDATE，余额复核与分配共用同一快照
		pending, err := txCommission.ListPendingForUpdate(vendorID)
		if err != nil {
			return err
		}
		available := ledger.SumAmounts(pending)
		if amount.GreaterThan(available) {
			return constant.NewError(constant.CodeInsufficientCommission)
		}

		now := time.Now()
		w := mainmodel.WithdrawalRequest{
			ID:          idgen.NewWithdrawalID(),
			VendorID:    vendorID,
			Amount:      amount,
			Status:      mainmodel.WithdrawalPending,
			RequestDate: now,
			Notes:       req.Notes,
		}
		if err := txWithdrawal.Insert(&w); err != nil {
			return err
		}

		result := ledger.PickFIFO(pending, amount)
		if !result.Covers(amount) {
			// 上面已复核余额，理论不可达；仍按资金不足整体回滚兜底
			return constant.NewError(constant.CodeInsufficientCommission)
		}
		if err := txCommission.MarkProcessing(result.AssignedIDs, w.ID); err != nil {
			return err
		}

		resp = dto.CreateWithdrawalResp{
			WithdrawalId:  w.ID,
			Amount:        amount,
			AssignedTotal: result.AssignedTotal,
			RequestDate:   now,
		}
		return nil
	})
	if err != nil {
		err = dao.TranslateDBError(err)
		if constant.IsRetryable(err) {
			notify.NotifySettlementAlert("warn", "提现创建行锁等待超时", map[string]string{
				"供应商":  utils.FormatUint(vendorID),
				"申请金额": amount.String(),
			})
		}
		return resp, err
	}

	InvalidateBalanceCache(vendorID)
	log.Printf("提现创建: vendor=%d withdrawal=%d amount=%s frozen=%s",
		vendorID, resp.WithdrawalId, resp.Amount, resp.AssignedTotal)
	return resp, nil
}

// Cancel 供应商取消待审核申请：释放全部冻结佣金，状态回到分配前
func (s *WithdrawalService) Cancel(vendorID, withdrawalID uint64) error {
	err := s.mainDao.WithTransaction(func(tx *gorm.DB) error {
		txMain := dao.NewMainDaoWithDB(tx)
		txCommission := dao.NewCommissionDaoWithDB(tx)
		txWithdrawal := dao.NewWithdrawalDaoWithDB(tx)

		// 先定位归属，再按固定顺序（供应商行 → 申请行）加锁，避免交叉死锁
		w, err := txWithdrawal.GetByID(withdrawalID)
		if err != nil {
			return err
		}
		if w == nil {
			return constant.NewError(constant.CodeWithdrawalNotFound)
		}
		if w.VendorID != vendorID {
			return constant.NewError(constant.CodeWithdrawalOwnerMismatch)
		}

		if _, err := txMain.LockVendor(w.VendorID); err != nil {
			return err
		}
		w, err = txWithdrawal.GetForUpdate(withdrawalID)
		if err != nil {
			return err
		}
		if w == nil {
			return constant.NewError(constant.CodeWithdrawalNotFound)
		}
		if !w.Status.CanTransition(mainmodel.WithdrawalCancelled) {
			return constant.NewError(constant.CodeWithdrawalStateInvalid)
		}

		if err := txWithdrawal.UpdateFromPending(withdrawalID, map[string]interface{}{
			"status": mainmodel.WithdrawalCancelled,
		}); err != nil {
			return err
		}
		released, err := txCommission.ReleaseByWithdrawal(withdrawalID)
		if err != nil {
			return err
		}
		log.Printf("提现取消: vendor=%d withdrawal=%d released=%d", vendorID, withdrawalID, released)
		return nil
	})
	if err != nil {
		return dao.TranslateDBError(err)
	}

	InvalidateBalanceCache(vendorID)
	return nil
}

// ListPending 管理端待审核列表，最早申请在前
func (s *WithdrawalService) ListPending(page dto.PageReq) (dto.PageVo, error) {
	p, size := normalizePage(page)
	list, total, err := s.withdrawalDao.ListPendingPage(p, size)
	if err != nil {
		return dto.PageVo{}, dao.TranslateDBError(err)
	}
	return dto.PageVo{Page: p, PageSize: size, Total: total, List: toWithdrawalVos(list)}, nil
}

// ListByVendor 供应商提现历史
func (s *WithdrawalService) ListByVendor(vendorID uint64, page dto.PageReq) (dto.PageVo, error) {
	p, size := normalizePage(page)
	list, total, err := s.withdrawalDao.ListByVendor(vendorID, p, size)
	if err != nil {
		return dto.PageVo{}, dao.TranslateDBError(err)
	}
	return dto.PageVo{Page: p, PageSize: size, Total: total, List: toWithdrawalVos(list)}, nil
}

func toWithdrawalVos(list []mainmodel.WithdrawalRequest) []dto.WithdrawalVo {
	vos := make([]dto.WithdrawalVo, 0, len(list))
	for _, w := range list {
		vos = append(vos, toWithdrawalVo(&w))
	}
	return vos
}

func toWithdrawalVo(w *mainmodel.WithdrawalRequest) dto.WithdrawalVo {
	return dto.WithdrawalVo{
		ID:             w.ID,
		VendorID:       w.VendorID,
		Amount:         w.Amount,
		Status:         string(w.Status),
		RequestDate:    w.RequestDate,
		PaymentDate:    w.PaymentDate,
		PaymentMethod:  w.PaymentMethod,
		PaymentDetails: w.PaymentDetails,
		Notes:          w.Notes,
		ProcessedBy:    w.ProcessedBy,
	}
}
