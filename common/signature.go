package common

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"time"
)

// SignHMAC512 HMAC-SHA512签名（hex编码）
func SignHMAC512(message, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// GetTimestampSeconds 获取时间戳（秒）
func GetTimestampSeconds() int64 {
	return time.Now().Unix()
}
