package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wht-ledger-api/internal/constant"
	"wht-ledger-api/internal/dto"
	"wht-ledger-api/internal/service"
	"wht-ledger-api/internal/settlement"
	"wht-ledger-api/internal/utils"
)

// AdminHandler 运营后台处理器（提现审核）
type AdminHandler struct {
	withdrawalSvc *service.WithdrawalService
	commissionSvc *service.CommissionService
	settle        *settlement.Settlement
}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{
		withdrawalSvc: service.NewWithdrawalService(),
		commissionSvc: service.NewCommissionService(),
		settle:        settlement.NewSettlement(),
	}
}

func adminID(c *gin.Context) (uint64, bool) {
	val, exists := c.Get("admin_id")
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

// ListPending 待审核提现列表，按申请时间正序
func (h *AdminHandler) ListPending(c *gin.Context) {
	var page dto.PageReq
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	vo, err := h.withdrawalSvc.ListPending(page)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// ListCommissions 查询某笔提现冻结的佣金明细
func (h *AdminHandler) ListCommissions(c *gin.Context) {
	wid, err := utils.ParseUint(c.Param("id"))
	if err != nil || wid == 0 {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	vos, err := h.commissionSvc.ListForWithdrawal(wid)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vos))
}

// Approve 审批通过并结算
func (h *AdminHandler) Approve(c *gin.Context) {
	aid, ok := adminID(c)
	if !ok {
		return
	}

	wid, err := utils.ParseUint(c.Param("id"))
	if err != nil || wid == 0 {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	var req dto.ApproveWithdrawalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeMissingParams))
		return
	}

	vo, err := h.settle.Approve(wid, aid, req)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// Reject 驳回提现并释放冻结佣金
func (h *AdminHandler) Reject(c *gin.Context) {
	aid, ok := adminID(c)
	if !ok {
		return
	}

	wid, err := utils.ParseUint(c.Param("id"))
	if err != nil || wid == 0 {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	var req dto.RejectWithdrawalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeMissingParams))
		return
	}

	vo, err := h.settle.Reject(wid, aid, req.Reason)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}
