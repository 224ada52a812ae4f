package tidex

import (
	"time"

	"github.com/lemconn/tidexlink/exchange"
	"github.com/lemconn/tidexlink/option"
)

// Tidex Tidex 交易所实现
type Tidex struct {
	client    *Client
	signer    *Signer
	markets   *marketCache
	nonceFunc func() int64
	now       func() time.Time
}

// NewTidex 创建 Tidex 交易所实例
func NewTidex(opts ...option.Option) (*Tidex, error) {
	options := option.Apply(opts...)

	client, err := NewClient(options)
	if err != nil {
		return nil, err
	}

	t := &Tidex{
		client:    client,
		signer:    NewSigner(options.SecretKey),
		markets:   newMarketCache(),
		nonceFunc: options.NonceFunc,
		now:       time.Now,
	}

	if len(options.Markets) > 0 {
		if err := t.markets.set(options.Markets); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Name 返回交易所名称
func (t *Tidex) Name() string {
	return tidexName
}

var _ exchange.Exchange = (*Tidex)(nil)
