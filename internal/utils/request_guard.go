package utils

import (
	"strconv"
	"time"
)

// 将毫秒转换为秒 + 纳秒
func ParseTimestamp(tsStr string) (time.Time, error) {
	ms, err := strconv.ParseInt(tsStr, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	sec := ms / 1000
	nsec := (ms % 1000) * 1e6
	return time.Unix(sec, nsec), nil
}

// 客户端时钟允许的最大超前量
const forwardSkew = 5 * time.Second

// 当前时间与请求时间差在合法窗口内（容忍客户端时钟轻微超前）
func IsTimestampValid(ts time.Time, window time.Duration) bool {
	now := time.Now()
	diff := now.Sub(ts)
	return diff >= -forwardSkew && diff <= window
}

func GetTimestampMs() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}
