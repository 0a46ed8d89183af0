package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wht-ledger-api/internal/constant"
	"wht-ledger-api/internal/dto"
	"wht-ledger-api/internal/service"
	"wht-ledger-api/internal/utils"
)

// VendorHandler 供应商端处理器（提现、余额、佣金流水）
type VendorHandler struct {
	withdrawalSvc *service.WithdrawalService
	commissionSvc *service.CommissionService
}

func NewVendorHandler() *VendorHandler {
	return &VendorHandler{
		withdrawalSvc: service.NewWithdrawalService(),
		commissionSvc: service.NewCommissionService(),
	}
}

// vendorID 从 VendorAuth 中间件放入的 context 取供应商ID
func vendorID(c *gin.Context) (uint64, bool) {
	val, exists := c.Get("vendor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeUnauthorized))
		return 0, false
	}
	id, ok := val.(uint64)
	if !ok || id == 0 {
		c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeUnauthorized))
		return 0, false
	}
	return id, true
}

// CreateWithdrawal 发起提现
func (h *VendorHandler) CreateWithdrawal(c *gin.Context) {
	vid, ok := vendorID(c)
	if !ok {
		return
	}

	var req dto.CreateWithdrawalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	resp, err := h.withdrawalSvc.Create(vid, req)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}

// CancelWithdrawal 取消待审核的提现申请
func (h *VendorHandler) CancelWithdrawal(c *gin.Context) {
	vid, ok := vendorID(c)
	if !ok {
		return
	}

	wid, err := utils.ParseUint(c.Param("id"))
	if err != nil || wid == 0 {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	if err := h.withdrawalSvc.Cancel(vid, wid); err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}

// ListWithdrawals 查询本供应商提现记录
func (h *VendorHandler) ListWithdrawals(c *gin.Context) {
	vid, ok := vendorID(c)
	if !ok {
		return
	}

	var page dto.PageReq
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	vo, err := h.withdrawalSvc.ListByVendor(vid, page)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// Balance 余额聚合视图
func (h *VendorHandler) Balance(c *gin.Context) {
	vid, ok := vendorID(c)
	if !ok {
		return
	}

	vo, err := h.commissionSvc.Balance(vid)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// ListCommissions 查询本供应商佣金流水
func (h *VendorHandler) ListCommissions(c *gin.Context) {
	vid, ok := vendorID(c)
	if !ok {
		return
	}

	var page dto.PageReq
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	vo, err := h.commissionSvc.ListByVendor(vid, page)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}
