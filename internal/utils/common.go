package utils

import "strconv"

// FormatUint uint64 转十进制字符串
func FormatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// ParseUint 十进制字符串转 uint64
func ParseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
