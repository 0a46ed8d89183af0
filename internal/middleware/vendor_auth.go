package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"wht-ledger-api/internal/constant"
	"wht-ledger-api/internal/dao"
	mainmodel "wht-ledger-api/internal/model/main"
	"wht-ledger-api/internal/utils"
)

// vendorLookupCode 归类供应商查询结果：
// 数据库错误报系统错误码，记录缺失或已禁用才是未授权。
func vendorLookupCode(vendor *mainmodel.Vendor, err error) int {
	switch {
	case err != nil && !dao.IsNotFound(err):
		return constant.CodeDatabaseError
	case err != nil || vendor == nil || vendor.Status != 1:
		return constant.CodeUnauthorized
	}
	return constant.CodeSuccess
}

// VendorAuth 中间件：验证供应商身份与请求签名
// 签名串：POST 取原始 body，GET 取 RawQuery，HMAC-SHA256 密钥为供应商 ApiKey
func VendorAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID, err := utils.ParseUint(c.GetHeader("X-Vendor-Id"))
		if err != nil || vendorID == 0 {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeUnauthorized))
			c.Abort()
			return
		}

		// 校验请求时间
		ts, err := utils.ParseTimestamp(c.GetHeader("X-Timestamp"))
		if err != nil || !utils.IsTimestampValid(ts, 1*time.Minute) {
			log.Printf("请求超时: vendor=%d ts=%s", vendorID, c.GetHeader("X-Timestamp"))
			c.JSON(http.StatusForbidden, utils.Error(constant.CodeInvalidParams))
			c.Abort()
			return
		}

		// 查询供应商信息
		vendor, err := dao.NewMainDao().GetVendor(vendorID)
		if code := vendorLookupCode(vendor, err); code != constant.CodeSuccess {
			// 数据库故障不能当成未授权，否则供应商会拿到误导性的 401
			status := http.StatusUnauthorized
			if code == constant.CodeDatabaseError {
				status = http.StatusInternalServerError
				log.Printf("供应商查询失败: vendor=%d err=%v", vendorID, err)
			} else {
				log.Printf("供应商不存在或已禁用: %v", vendorID)
			}
			c.JSON(status, utils.Error(code))
			c.Abort()
			return
		}

		sig := c.GetHeader("X-Signature")
		if sig == "" {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeSignatureError))
			c.Abort()
			return
		}

		// 取参与签名的内容
		var payload []byte
		if c.Request.Method == http.MethodGet {
			payload = []byte(c.Request.URL.RawQuery)
		} else {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				c.JSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
				c.Abort()
				return
			}
			// 恢复 body
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			payload = body
		}

		mac := hmac.New(sha256.New, []byte(vendor.ApiKey))
		mac.Write(payload)
		mac.Write([]byte(c.GetHeader("X-Timestamp")))
		if !hmac.Equal([]byte(hex.EncodeToString(mac.Sum(nil))), []byte(sig)) {
			c.JSON(http.StatusUnauthorized, utils.Error(constant.CodeSignatureError))
			c.Abort()
			return
		}

		c.Set("vendor_id", vendorID) // 放入 context 供 handler 使用
		c.Next()
	}
}
