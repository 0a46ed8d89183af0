package settlement

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"wht-ledger-api/internal/constant"
	"wht-ledger-api/internal/dao"
	"wht-ledger-api/internal/dto"
	"wht-ledger-api/internal/ledger"
	"wht-ledger-api/internal/logger"
	mainmodel "wht-ledger-api/internal/model/main"
	"wht-ledger-api/internal/mq"
	"wht-ledger-api/internal/notify"
	"wht-ledger-api/internal/service"
	"wht-ledger-api/internal/utils"
)

// Settlement 提现结算处理器（管理端审批/驳回）
type Settlement struct {
	mainDao       *dao.MainDao
	commissionDao *dao.CommissionDao
	withdrawalDao *dao.WithdrawalDao
}

func NewSettlement() *Settlement {
	return &Settlement{
		mainDao:       dao.NewMainDao(),
		commissionDao: dao.NewCommissionDao(),
		withdrawalDao: dao.NewWithdrawalDao(),
	}
}

// Approve 审批通过：申请置为 completed，冻结佣金整体结算，
// 随后执行关账口径的对账补结算——同一供应商在打款时刻前入账且仍 pending 的佣金
// 一并置为已结算。补结算金额大于零时实际打款额超过申请额，单独告警留痕。
func (s *Settlement) Approve(withdrawalID, adminID uint64, req dto.ApproveWithdrawalReq) (dto.WithdrawalVo, error) {
	var (
		vendorID   uint64
		vendorKey  string
		amount     decimal.Decimal
		extraTotal decimal.Decimal
		paymentAt  time.Time
	)

	err := s.mainDao.WithTransaction(func(tx *gorm.DB) error {
		txMain := dao.NewMainDaoWithDB(tx)
		txCommission := dao.NewCommissionDaoWithDB(tx)
		txWithdrawal := dao.NewWithdrawalDaoWithDB(tx)

		// 加锁顺序与创建/取消一致：供应商行 → 申请行
		w, err := txWithdrawal.GetByID(withdrawalID)
		if err != nil {
			return err
		}
		if w == nil {
			return constant.NewError(constant.CodeWithdrawalNotFound)
		}
		vendor, err := txMain.LockVendor(w.VendorID)
		if err != nil {
			return err
		}
		w, err = txWithdrawal.GetForUpdate(withdrawalID)
		if err != nil {
			return err
		}
		if w == nil {
			return constant.NewError(constant.CodeWithdrawalNotFound)
		}
		if !w.Status.CanTransition(mainmodel.WithdrawalCompleted) {
			return constant.NewError(constant.CodeWithdrawalStateInvalid)
		}

		paymentAt = time.Now()
		if err := txWithdrawal.UpdateFromPending(withdrawalID, map[string]interface{}{
			"status":          mainmodel.WithdrawalCompleted,
			"payment_method":  req.PaymentMethod,
			"payment_details": req.PaymentDetails,
			"payment_date":    paymentAt,
			"processed_by":    adminID,
		}); err != nil {
			return err
		}

		if _, err := txCommission.MarkPaidByWithdrawal(withdrawalID, paymentAt); err != nil {
			return err
		}

		// 对账补结算：冻结集之外、打款时刻前入账的 pending 佣金同步关账
		remaining, err := txCommission.ListPendingForUpdate(w.VendorID)
		if err != nil {
			return err
		}
		extraIDs := ledger.PickReconcilable(remaining, paymentAt)
		if err := txCommission.MarkPaidByIDs(extraIDs, paymentAt); err != nil {
			return err
		}
		extraTotal = decimal.Zero
		for _, c := range remaining {
			for _, id := range extraIDs {
				if c.ID == id {
					extraTotal = extraTotal.Add(c.Amount)
				}
			}
		}

		vendorID = w.VendorID
		vendorKey = vendor.ApiKey
		amount = w.Amount
		return nil
	})
	if err != nil {
		err = dao.TranslateDBError(err)
		if constant.IsRetryable(err) {
			notify.NotifySettlementAlert("warn", "提现审批行锁等待超时", map[string]string{
				"提现单号": utils.FormatUint(withdrawalID),
				"操作人":  utils.FormatUint(adminID),
			})
		}
		return dto.WithdrawalVo{}, err
	}

	service.InvalidateBalanceCache(vendorID)

	logger.Settlement.WithFields(logrus.Fields{
		"withdrawal": withdrawalID,
		"vendor":     vendorID,
		"admin":      adminID,
		"amount":     amount.String(),
		"extra":      extraTotal.String(),
		"method":     req.PaymentMethod,
	}).Info("withdrawal approved")

	if extraTotal.GreaterThan(decimal.Zero) {
		notify.NotifySettlementAlert("warn", "提现补结算超额提醒", map[string]string{
			"提现单号":  utils.FormatUint(withdrawalID),
			"供应商":   utils.FormatUint(vendorID),
			"申请金额":  amount.String(),
			"补结算金额": extraTotal.String(),
		})
	}

	evt := dto.WithdrawalSettledEvent{
		WithdrawalID:  withdrawalID,
		VendorID:      vendorID,
		Amount:        amount.String(),
		Status:        string(mainmodel.WithdrawalCompleted),
		PaymentMethod: req.PaymentMethod,
		Ts:            paymentAt.Unix(),
	}
	signEvent(&evt, vendorKey)
	_ = mq.PublishWithdrawalSettled(evt)

	w, err := s.withdrawalDao.GetByID(withdrawalID)
	if err != nil || w == nil {
		return dto.WithdrawalVo{}, dao.TranslateDBError(err)
	}
	return toVo(w), nil
}

// Reject 审批驳回：申请置为 rejected，冻结佣金原样释放回 pending
func (s *Settlement) Reject(withdrawalID, adminID uint64, reason string) (dto.WithdrawalVo, error) {
	var (
		vendorID  uint64
		vendorKey string
		amount    decimal.Decimal
	)

	err := s.mainDao.WithTransaction(func(tx *gorm.DB) error {
		txMain := dao.NewMainDaoWithDB(tx)
		txCommission := dao.NewCommissionDaoWithDB(tx)
		txWithdrawal := dao.NewWithdrawalDaoWithDB(tx)

		w, err := txWithdrawal.GetByID(withdrawalID)
		if err != nil {
			return err
		}
		if w == nil {
			return constant.NewError(constant.CodeWithdrawalNotFound)
		}
		vendor, err := txMain.LockVendor(w.VendorID)
		if err != nil {
			return err
		}
		w, err = txWithdrawal.GetForUpdate(withdrawalID)
		if err != nil {
			return err
		}
		if w == nil {
			return constant.NewError(constant.CodeWithdrawalNotFound)
		}
		if !w.Status.CanTransition(mainmodel.WithdrawalRejected) {
			return constant.NewError(constant.CodeWithdrawalStateInvalid)
		}

		if err := txWithdrawal.UpdateFromPending(withdrawalID, map[string]interface{}{
			"status":       mainmodel.WithdrawalRejected,
			"notes":        reason,
			"processed_by": adminID,
		}); err != nil {
			return err
		}
		if _, err := txCommission.ReleaseByWithdrawal(withdrawalID); err != nil {
			return err
		}

		vendorID = w.VendorID
		vendorKey = vendor.ApiKey
		amount = w.Amount
		return nil
	})
	if err != nil {
		return dto.WithdrawalVo{}, dao.TranslateDBError(err)
	}

	service.InvalidateBalanceCache(vendorID)

	logger.Settlement.WithFields(logrus.Fields{
		"withdrawal": withdrawalID,
		"vendor":     vendorID,
		"admin":      adminID,
		"amount":     amount.String(),
		"reason":     reason,
	}).Info("withdrawal rejected")

	evt := dto.WithdrawalSettledEvent{
		WithdrawalID: withdrawalID,
		VendorID:     vendorID,
		Amount:       amount.String(),
		Status:       string(mainmodel.WithdrawalRejected),
		Notes:        reason,
		Ts:           time.Now().Unix(),
	}
	signEvent(&evt, vendorKey)
	_ = mq.PublishWithdrawalRejected(evt)

	w, err := s.withdrawalDao.GetByID(withdrawalID)
	if err != nil || w == nil {
		return dto.WithdrawalVo{}, dao.TranslateDBError(err)
	}
	return toVo(w), nil
}

// signEvent 事件按供应商密钥签名，通知服务据此校验来源
func signEvent(evt *dto.WithdrawalSettledEvent, apiKey string) {
	evt.Sign = utils.GenerateSign(map[string]string{
		"withdrawal_id": utils.FormatUint(evt.WithdrawalID),
		"vendor_id":     utils.FormatUint(evt.VendorID),
		"amount":        evt.Amount,
		"status":        evt.Status,
	}, apiKey)
}

func toVo(w *mainmodel.WithdrawalRequest) dto.WithdrawalVo {
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
