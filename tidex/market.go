package tidex

import (
	"context"
	"strings"
	"sync"

	"github.com/lemconn/tidexlink/common"
	"github.com/lemconn/tidexlink/model"
	"golang.org/x/sync/singleflight"
)

// marketCache 进程内市场缓存
// 读写通过 mu 保护，整体替换；并发的加载请求通过 singleflight 合并为一次网络请求
type marketCache struct {
	mu      sync.RWMutex
	markets model.Markets
	loaded  bool
	group   singleflight.Group
}

func newMarketCache() *marketCache {
	return &marketCache{}
}

// get 返回缓存的副本，调用方修改返回值不会影响缓存
func (c *marketCache) get() (model.Markets, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, false
	}
	return cloneMarkets(c.markets), true
}

func (c *marketCache) set(markets model.Markets) error {
	stored := make(model.Markets, 0, len(markets))
	for _, market := range markets {
		if market == nil {
			continue
		}
		m, err := completeMarket(market)
		if err != nil {
			return err
		}
		stored = append(stored, m)
	}

	c.mu.Lock()
	c.markets = stored
	c.loaded = true
	c.mu.Unlock()
	return nil
}

func cloneMarkets(markets model.Markets) model.Markets {
	result := make(model.Markets, len(markets))
	for i, market := range markets {
		m := *market
		result[i] = &m
	}
	return result
}

// completeMarket 复制市场信息并补齐 Symbol / Base / Quote / ID
// 调用方通过 option.WithMarkets 预加载时可能只填写了其中一部分
func completeMarket(market *model.Market) (*model.Market, error) {
	m := *market
	if m.Base == "" || m.Quote == "" {
		var (
			base, quote string
			err         error
		)
		switch {
		case m.Symbol != "":
			base, quote, err = common.ParseSymbol(m.Symbol)
		case m.ID != "":
			base, quote, err = FromTidexPair(m.ID)
		default:
			return nil, common.NewValidationError("symbol", "market requires symbol, id or base/quote")
		}
		if err != nil {
			return nil, err
		}
		m.Base, m.Quote = base, quote
	}
	m.Base = strings.ToUpper(m.Base)
	m.Quote = strings.ToUpper(m.Quote)
	m.Symbol = common.NormalizeSymbol(m.Base, m.Quote)
	if m.ID == "" {
		m.ID = strings.ToLower(m.Base) + "_" + strings.ToLower(m.Quote)
	}
	return &m, nil
}

// FetchMarkets 获取市场列表
// 缓存已加载且 reload 为 false 时直接返回缓存，不发起请求
func (t *Tidex) FetchMarkets(ctx context.Context, reload bool) (model.Markets, error) {
	if !reload {
		if markets, ok := t.markets.get(); ok {
			return markets, nil
		}
	}

	key := "load"
	if reload {
		key = "reload"
	}
	v, err, _ := t.markets.group.Do(key, func() (interface{}, error) {
		if !reload {
			// 等待期间可能已被其他调用加载
			if markets, ok := t.markets.get(); ok {
				return markets, nil
			}
		}
		markets, err := t.loadMarkets(ctx)
		if err != nil {
			return nil, err
		}
		if err := t.markets.set(markets); err != nil {
			return nil, err
		}
		t.client.Logger.Debug().Int("count", len(markets)).Msg("markets loaded")
		return markets, nil
	})
	if err != nil {
		return nil, err
	}

	return cloneMarkets(v.(model.Markets)), nil
}

func (t *Tidex) loadMarkets(ctx context.Context) (model.Markets, error) {
	var data tidexInfoResponse
	if err := t.publicRequest(ctx, "info", "", &data); err != nil {
		return nil, err
	}
	markets, err := parseMarkets(&data)
	if err != nil {
		return nil, &common.TransportError{Endpoint: "info", Err: err}
	}
	return markets, nil
}

// GetMarket 获取单个市场信息，缓存未加载时会先加载
func (t *Tidex) GetMarket(ctx context.Context, symbol string) (*model.Market, error) {
	base, quote, err := common.ParseSymbol(symbol)
	if err != nil {
		return nil, err
	}

	markets, err := t.FetchMarkets(ctx, false)
	if err != nil {
		return nil, err
	}

	normalized := common.NormalizeSymbol(base, quote)
	market, ok := markets.Find(normalized)
	if !ok {
		return nil, &common.ValidationError{
			Field:   "symbol",
			Message: "market not found: " + normalized,
			Err:     common.ErrMarketNotFound,
		}
	}
	return market, nil
}
