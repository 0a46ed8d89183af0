package middleware

import (
	"fmt"
	"testing"

	"gorm.io/gorm"

	"wht-ledger-api/internal/constant"
	mainmodel "wht-ledger-api/internal/model/main"
)

func TestVendorLookupCode(t *testing.T) {
	enabled := &mainmodel.Vendor{VendorID: 7, Status: 1}
	disabled := &mainmodel.Vendor{VendorID: 7, Status: 0}

	cases := []struct {
		name   string
		vendor *mainmodel.Vendor
		err    error
		want   int
	}{
		{"enabled vendor", enabled, nil, constant.CodeSuccess},
		{"disabled vendor", disabled, nil, constant.CodeUnauthorized},
		{"unknown vendor", nil, gorm.ErrRecordNotFound, constant.CodeUnauthorized},
		// 数据库故障必须报系统错误，不能伪装成未授权
		{"db outage", nil, fmt.Errorf("dial tcp: connection refused"), constant.CodeDatabaseError},
		{"wrapped record not found", nil, fmt.Errorf("get vendor: %w", gorm.ErrRecordNotFound), constant.CodeUnauthorized},
	}
	for _, tc := range cases {
		if got := vendorLookupCode(tc.vendor, tc.err); got != tc.want {
			t.Errorf("%s: code = %d, want %d", tc.name, got, tc.want)
		}
	}
}
