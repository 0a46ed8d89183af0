package utils

import (
	"testing"
)

func TestGenerateSign_Deterministic(t *testing.T) {
	params := map[string]string{
		"withdrawal_id": "1001",
		"vendor_id":     "7",
		"amount":        "150.00",
		"status":        "completed",
	}
	first := GenerateSign(params, "k-test")
	second := GenerateSign(params, "k-test")
	if first != second {
		t.Errorf("sign not deterministic: %s vs %s", first, second)
	}
	if len(first) != 32 {
		t.Errorf("unexpected sign length: %d", len(first))
	}
}

func TestGenerateSign_SkipsEmptyAndSignField(t *testing.T) {
	base := map[string]string{
		"vendor_id": "7",
		"amount":    "150.00",
	}
	withNoise := map[string]string{
		"vendor_id": "7",
		"amount":    "150.00",
		"notes":     "",
		"sign":      "SHOULD-BE-IGNORED",
	}
	if GenerateSign(base, "k-test") != GenerateSign(withNoise, "k-test") {
		t.Errorf("empty values and sign field must not affect signature")
	}
}

func TestVerifySign(t *testing.T) {
	params := map[string]string{
		"vendor_id": "7",
		"amount":    "150.00",
	}
	params["sign"] = GenerateSign(params, "k-test")

	if !VerifySign(params, "k-test") {
		t.Errorf("valid signature rejected")
	}
	if VerifySign(params, "k-other") {
		t.Errorf("signature with wrong key accepted")
	}

	params["amount"] = "151.00"
	if VerifySign(params, "k-test") {
		t.Errorf("tampered params accepted")
	}
}
