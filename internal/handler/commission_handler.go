package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"wht-ledger-api/internal/constant"
	"wht-ledger-api/internal/dto"
	"wht-ledger-api/internal/service"
	"wht-ledger-api/internal/utils"
)

// CommissionHandler 佣金入账处理器（内部接口）
type CommissionHandler struct{ svc *service.CommissionService }

func NewCommissionHandler() *CommissionHandler {
	return &CommissionHandler{svc: service.NewCommissionService()}
}

// Record 佣金入账，按 (vendor_id, order_id) 幂等
func (h *CommissionHandler) Record(c *gin.Context) {
	var req dto.RecordCommissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// 判断是否为字段验证错误 validator.ValidationErrors 类型断言，并逐项提取字段名与错误原因
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			errFields := make([]map[string]string, 0)
			for _, fe := range ve {
				errFields = append(errFields, map[string]string{
					"field": fe.Field(),              // 字段名
					"error": utils.ValidationMsg(fe), // 错误信息
				})
			}
			c.JSON(http.StatusBadRequest, gin.H{
				"code":   constant.CodeInvalidParams,
				"msg":    "参数校验失败",
				"errors": errFields,
			})
			return
		}
		log.Printf("佣金入账:错误不能解析数据: %v", err.Error())
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
		return
	}

	resp, err := h.svc.Record(req)
	if err != nil {
		c.JSON(http.StatusOK, utils.ErrorFrom(err))
		return
	}
	c.JSON(http.StatusOK, utils.Success(resp))
}
