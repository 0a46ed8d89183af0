package constant

import (
	"fmt"
	"testing"
)

func TestNewError_CarriesCatalogMessage(t *testing.T) {
	err := NewError(CodeInsufficientCommission)
	if err.Code() != CodeInsufficientCommission {
		t.Errorf("code = %d, want %d", err.Code(), CodeInsufficientCommission)
	}
	info, ok := GetErrorInfo(CodeInsufficientCommission)
	if !ok {
		t.Fatalf("catalog missing code %d", CodeInsufficientCommission)
	}
	if err.Message() != info.CN {
		t.Errorf("message = %q, want %q", err.Message(), info.CN)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(nil); got != CodeSuccess {
		t.Errorf("CodeOf(nil) = %d, want %d", got, CodeSuccess)
	}
	if got := CodeOf(NewError(CodeWithdrawalPendingExists)); got != CodeWithdrawalPendingExists {
		t.Errorf("CodeOf = %d, want %d", got, CodeWithdrawalPendingExists)
	}
	// 包装后的业务错误同样要能提取
	wrapped := fmt.Errorf("approve: %w", NewError(CodeLockTimeout))
	if got := CodeOf(wrapped); got != CodeLockTimeout {
		t.Errorf("CodeOf(wrapped) = %d, want %d", got, CodeLockTimeout)
	}
	if got := CodeOf(fmt.Errorf("plain failure")); got != CodeSystemError {
		t.Errorf("CodeOf(plain) = %d, want %d", got, CodeSystemError)
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(NewError(CodeLockTimeout)) {
		t.Errorf("lock timeout must be retryable")
	}
	if IsRetryable(NewError(CodeInsufficientCommission)) {
		t.Errorf("insufficient commission must not be retryable")
	}
}
