package tidexlink

import "github.com/lemconn/tidexlink/common"

var (
	// ErrMarketNotFound 市场未找到
	ErrMarketNotFound = common.ErrMarketNotFound
	// ErrAuthenticationRequired 需要认证
	ErrAuthenticationRequired = common.ErrAuthenticationRequired
)

type (
	// CredentialsError 缺少 API Key 或 Secret
	CredentialsError = common.CredentialsError
	// ValidationError 参数校验失败
	ValidationError = common.ValidationError
	// ExchangeError 交易所返回的错误
	ExchangeError = common.ExchangeError
	// TransportError 请求发送或响应解析失败
	TransportError = common.TransportError
)
