package tidex

import (
	"github.com/lemconn/tidexlink/common"
	"github.com/lemconn/tidexlink/option"
	"github.com/rs/zerolog"
)

const (
	tidexName       = "tidex"
	tidexPublicURL  = "https://api.tidex.com/api/3"
	tidexPrivateURL = "https://api.tidex.com/tapi"
)

// Client Tidex 客户端
type Client struct {
	// Public 公共接口 HTTP 客户端
	Public *common.HTTPClient

	// Private 私有接口 HTTP 客户端
	Private *common.HTTPClient

	// APIKey API 密钥
	APIKey string

	// SecretKey 密钥
	SecretKey string

	// Logger 日志
	Logger zerolog.Logger
}

// NewClient 创建 Tidex 客户端
func NewClient(options *option.ExchangeOptions) (*Client, error) {
	publicURL := tidexPublicURL
	privateURL := tidexPrivateURL
	if options.BaseURL != "" {
		publicURL = options.BaseURL
	}
	if options.PrivateURL != "" {
		privateURL = options.PrivateURL
	}

	logger := zerolog.Nop()
	if options.Logger != nil {
		logger = *options.Logger
	}
	if options.Debug {
		if options.Logger == nil {
			logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
		}
		logger = logger.Level(zerolog.DebugLevel)
	}
	logger = logger.With().Str("exchange", tidexName).Logger()

	client := &Client{
		Public:    common.NewHTTPClient(publicURL),
		Private:   common.NewHTTPClient(privateURL),
		APIKey:    options.APIKey,
		SecretKey: options.SecretKey,
		Logger:    logger,
	}

	for _, c := range []*common.HTTPClient{client.Public, client.Private} {
		c.SetHTTPClient(options.HTTPClient)
		c.SetLogger(logger)
		if options.Timeout > 0 {
			c.SetTimeout(options.Timeout)
		}
		if options.Proxy != "" {
			if err := c.SetProxy(options.Proxy); err != nil {
				return nil, err
			}
		}
	}

	return client, nil
}
