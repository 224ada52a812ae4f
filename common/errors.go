package common

import (
	"errors"
	"fmt"
)

var (
	// ErrMarketNotFound 市场未找到
	ErrMarketNotFound = errors.New("market not found")
	// ErrAuthenticationRequired 需要认证（API Key / Secret 缺失）
	ErrAuthenticationRequired = errors.New("authentication required")
)

// CredentialsError 私有接口调用时缺少 API Key 或 Secret，在发出任何请求之前返回
type CredentialsError struct {
	// Field 缺失的字段：apiKey 或 apiSecret
	Field string
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("missing %s property for private api request", e.Field)
}

// Unwrap 允许 errors.Is(err, ErrAuthenticationRequired)
func (e *CredentialsError) Unwrap() error {
	return ErrAuthenticationRequired
}

// ValidationError 调用方输入不合法（交易对、订单号、价格/数量边界、limit 等）
type ValidationError struct {
	// Field 出错的参数名
	Field string
	// Message 错误描述，包含出错的参数与边界
	Message string
	// Err 可选的底层错误
	Err error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError 创建参数校验错误
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// ExchangeError 交易所明确返回失败（success=0 + error），Message 为交易所原文
type ExchangeError struct {
	Message string
}

func (e *ExchangeError) Error() string {
	return e.Message
}

// TransportError 请求发送失败或响应无法解析
// 错误信息包含接口名与请求参数，不包含密钥和签名
type TransportError struct {
	// Endpoint 公共接口名（info/ticker/depth/trades）或私有方法名（getInfo/Trade/...）
	Endpoint string
	// Params 查询字符串或编码后的请求参数
	Params string
	// Err 底层错误
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request '%s' failed, params: %s: %v", e.Endpoint, e.Params, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
