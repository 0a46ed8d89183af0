package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wht-ledger-api/internal/config"
	"wht-ledger-api/internal/constant"
	"wht-ledger-api/internal/utils"
)

// AdminAuth 运营后台认证，X-Admin-Id 记录为审核操作人
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if token == "" || token != config.C.Security.AdminToken {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeUnauthorized))
			c.Abort()
			return
		}

		adminID, err := utils.ParseUint(c.GetHeader("X-Admin-Id"))
		if err != nil || adminID == 0 {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeMissingParams))
			c.Abort()
			return
		}

		c.Set("admin_id", adminID)
		c.Next()
	}
}
