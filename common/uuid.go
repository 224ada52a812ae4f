package common

import (
	"github.com/google/uuid"
)

// NewRequestID 生成请求 ID，用于关联同一请求的日志
func NewRequestID() string {
	return uuid.NewString()
}
