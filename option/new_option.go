package option

import (
	"net/http"
	"time"

	"github.com/lemconn/tidexlink/model"
	"github.com/rs/zerolog"
)

// ExchangeOptions 交易所配置选项（用于 Exchange 初始化）
type ExchangeOptions struct {
	APIKey     string
	SecretKey  string
	BaseURL    string // 公共接口地址
	PrivateURL string // 私有接口地址
	Proxy      string
	Timeout    time.Duration
	Debug      bool
	Logger     *zerolog.Logger
	HTTPClient *http.Client
	// Markets 预加载的市场信息，设置后首次调用不再请求 info 接口
	Markets []*model.Market
	// NonceFunc 私有请求的 nonce 来源，未设置时 nonce 固定为 1
	NonceFunc func() int64
}

// Option 配置选项函数类型（用于 Exchange 初始化）
type Option func(*ExchangeOptions)

// Apply 应用所有选项
func Apply(opts ...Option) *ExchangeOptions {
	options := &ExchangeOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithAPIKey 设置 API Key
func WithAPIKey(apiKey string) Option {
	return func(opts *ExchangeOptions) {
		opts.APIKey = apiKey
	}
}

// WithSecretKey 设置 Secret Key
func WithSecretKey(secretKey string) Option {
	return func(opts *ExchangeOptions) {
		opts.SecretKey = secretKey
	}
}

// WithBaseURL 设置公共接口基础 URL
func WithBaseURL(baseURL string) Option {
	return func(opts *ExchangeOptions) {
		opts.BaseURL = baseURL
	}
}

// WithPrivateURL 设置私有接口 URL
func WithPrivateURL(privateURL string) Option {
	return func(opts *ExchangeOptions) {
		opts.PrivateURL = privateURL
	}
}

// WithProxy 设置代理
func WithProxy(proxy string) Option {
	return func(opts *ExchangeOptions) {
		opts.Proxy = proxy
	}
}

// WithTimeout 设置请求超时
func WithTimeout(timeout time.Duration) Option {
	return func(opts *ExchangeOptions) {
		opts.Timeout = timeout
	}
}

// WithDebug 设置是否启用调试日志
func WithDebug(debug bool) Option {
	return func(opts *ExchangeOptions) {
		opts.Debug = debug
	}
}

// WithLogger 设置日志
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *ExchangeOptions) {
		opts.Logger = &logger
	}
}

// WithHTTPClient 使用自定义的 http.Client
func WithHTTPClient(client *http.Client) Option {
	return func(opts *ExchangeOptions) {
		opts.HTTPClient = client
	}
}

// WithMarkets 预加载市场信息
func WithMarkets(markets ...*model.Market) Option {
	return func(opts *ExchangeOptions) {
		opts.Markets = markets
	}
}

// WithNonceFunc 设置私有请求的 nonce 来源
func WithNonceFunc(fn func() int64) Option {
	return func(opts *ExchangeOptions) {
		opts.NonceFunc = fn
	}
}
