package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"wht-ledger-api/internal/config"
)

// InternalAuth 内部服务调用认证（佣金入账来自订单服务）
func InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Token 验证
		token := c.GetHeader("X-Internal-Token")
		if token == "" || token != config.C.Security.InternalToken {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": 401,
				"msg":  "invalid internal token",
			})
			c.Abort()
			return
		}

		// IP 白名单
		ip := c.ClientIP()
		whitelist := []string{"127.0.0.1", "192.168.", "10.", "::1"}
		allowed := false
		for _, prefix := range whitelist {
			if strings.HasPrefix(ip, prefix) {
				allowed = true
				break
			}
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"code": 403,
				"msg":  "ip not allowed: " + ip,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
