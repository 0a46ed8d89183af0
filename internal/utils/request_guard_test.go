package utils

import (
	"fmt"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	now := time.Now()
	ms := now.UnixNano() / int64(time.Millisecond)
	ts, err := ParseTimestamp(fmt.Sprintf("%d", ms))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ts.Unix() != now.Unix() {
		t.Errorf("parsed %v, want second precision of %v", ts, now)
	}

	if _, err := ParseTimestamp("not-a-number"); err == nil {
		t.Errorf("expected error for non numeric input")
	}
}

func TestIsTimestampValid(t *testing.T) {
	window := time.Minute
	if !IsTimestampValid(time.Now().Add(-30*time.Second), window) {
		t.Errorf("timestamp inside window rejected")
	}
	if IsTimestampValid(time.Now().Add(-2*time.Minute), window) {
		t.Errorf("stale timestamp accepted")
	}
	// 客户端时钟轻微超前要容忍，明显超前仍拒绝
	if !IsTimestampValid(time.Now().Add(2*time.Second), window) {
		t.Errorf("slightly-ahead client clock rejected")
	}
	if IsTimestampValid(time.Now().Add(30*time.Second), window) {
		t.Errorf("far-future timestamp accepted")
	}
}
