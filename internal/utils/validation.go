package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationMsg 将字段校验错误翻译为可读提示
func ValidationMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "该字段为必填项"
	case "gt":
		return fmt.Sprintf("必须大于 %s", fe.Param())
	case "gte":
		return fmt.Sprintf("必须大于等于 %s", fe.Param())
	case "max":
		return fmt.Sprintf("长度不能超过 %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("取值必须为 [%s] 之一", fe.Param())
	default:
		return fmt.Sprintf("校验失败: %s", fe.Tag())
	}
}
