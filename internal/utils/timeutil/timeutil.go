package timeutil

import (
	"time"
)

// NowUTC 返回当前 UTC 时间
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatISO8601 格式化为 ISO8601 / RFC3339 格式 (2025-10-03T06:45:21Z)
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseISO8601 解析 ISO8601 / RFC3339 时间字符串
func ParseISO8601(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// FormatDateTime 格式化为 YYYY-MM-DD HH:MM:SS（日志与报表展示）
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
