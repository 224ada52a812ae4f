package tidexlink

import (
	"github.com/lemconn/tidexlink/exchange"
	"github.com/lemconn/tidexlink/option"
	"github.com/lemconn/tidexlink/tidex"
)

// ExchangeTidex 交易所名称
const ExchangeTidex = "tidex"

// NewExchange 创建 Tidex 交易所实例（使用 Functional Options Pattern）
func NewExchange(opts ...option.Option) (exchange.Exchange, error) {
	ex, err := tidex.NewTidex(opts...)
	if err != nil {
		return nil, err
	}
	return ex, nil
}
