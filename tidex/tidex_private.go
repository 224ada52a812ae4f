package tidex

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/lemconn/tidexlink/common"
	"github.com/lemconn/tidexlink/model"
	"github.com/lemconn/tidexlink/option"
	"github.com/lemconn/tidexlink/types"
	"github.com/shopspring/decimal"
)

// checkCredentials 私有接口调用前检查 API Key 与 Secret
func (t *Tidex) checkCredentials() error {
	if t.client.APIKey == "" {
		return &common.CredentialsError{Field: "apiKey"}
	}
	if t.client.SecretKey == "" {
		return &common.CredentialsError{Field: "apiSecret"}
	}
	return nil
}

// nonce 调用方指定的 nonce 优先，其次是 WithNonceFunc，否则为 1
func (t *Tidex) nonce(argsOpts *option.ExchangeArgsOptions) int64 {
	if argsOpts != nil {
		if n, ok := option.GetInt64(argsOpts.Nonce); ok && n != 0 {
			return n
		}
	}
	if t.nonceFunc != nil {
		return t.nonceFunc()
	}
	return defaultNonce
}

// privateRequest 签名并发送私有请求，返回 success=1 时的原始响应
func (t *Tidex) privateRequest(ctx context.Context, method string, params *types.ExValues, argsOpts *option.ExchangeArgsOptions) ([]byte, error) {
	if params == nil {
		params = types.NewExValues()
	}

	body, signature := t.signer.SignRequest(method, params, t.nonce(argsOpts))
	resp, err := t.client.Private.PostForm(ctx, "", body, map[string]string{
		"Key":  t.client.APIKey,
		"Sign": signature,
	})
	if err != nil {
		return nil, &common.TransportError{Endpoint: method, Params: params.Encode(), Err: err}
	}

	var status tidexStatus
	if err := json.Unmarshal(resp, &status); err != nil {
		return nil, &common.TransportError{Endpoint: method, Params: params.Encode(), Err: err}
	}
	if status.privateFailed() {
		return nil, &common.ExchangeError{Message: status.Error}
	}
	return resp, nil
}

// privateCall 发送私有请求并解析 return 字段
func privateCall[T any](ctx context.Context, t *Tidex, method string, params *types.ExValues, argsOpts *option.ExchangeArgsOptions) (*T, error) {
	resp, err := t.privateRequest(ctx, method, params, argsOpts)
	if err != nil {
		return nil, err
	}

	var data tidexResponse[T]
	if err := json.Unmarshal(resp, &data); err != nil {
		encoded := ""
		if params != nil {
			encoded = params.Encode()
		}
		return nil, &common.TransportError{Endpoint: method, Params: encoded, Err: err}
	}
	return &data.Return, nil
}

// FetchAccountInfo 获取账户信息（getInfo），余额只有 Total
func (t *Tidex) FetchAccountInfo(ctx context.Context, opts ...option.ArgsOption) (*model.AccountInfo, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, err
	}

	data, err := privateCall[tidexAccountInfo](ctx, t, "getInfo", nil, option.ApplyArgs(opts...))
	if err != nil {
		return nil, err
	}
	return parseAccountInfo(data), nil
}

// FetchAccountInfoExtended 获取账户信息（getInfoExt），余额区分可用与冻结
func (t *Tidex) FetchAccountInfoExtended(ctx context.Context, opts ...option.ArgsOption) (*model.AccountInfo, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, err
	}

	data, err := privateCall[tidexAccountInfoExt](ctx, t, "getInfoExt", nil, option.ApplyArgs(opts...))
	if err != nil {
		return nil, err
	}
	return parseAccountInfoExt(data), nil
}

// CreateLimitOrder 创建限价单
// 校验顺序：凭证、交易对、市场、方向、价格、数量、成交额，全部通过后才发送请求
func (t *Tidex) CreateLimitOrder(ctx context.Context, symbol string, price, amount decimal.Decimal, side model.OrderSide, opts ...option.ArgsOption) (*model.Order, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, err
	}
	if symbol == "" {
		return nil, common.NewValidationError("symbol", "symbol is required for limit order")
	}

	market, err := t.GetMarket(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if err := ValidateLimitOrder(market, price, amount, side); err != nil {
		return nil, err
	}

	params := types.NewExValues()
	params.Set("pair", market.ID)
	params.Set("type", string(side))
	params.Set("rate", price)
	params.Set("amount", amount)

	data, err := privateCall[tidexTradeResult](ctx, t, "Trade", params, option.ApplyArgs(opts...))
	if err != nil {
		return nil, err
	}
	return parseCreatedOrder(data, market, side, price, t.now().Unix()), nil
}

// FetchOpenOrders 获取未完成订单（ActiveOrders）
// 支持 option.WithSymbol 过滤交易对
func (t *Tidex) FetchOpenOrders(ctx context.Context, opts ...option.ArgsOption) ([]*model.Order, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, err
	}

	argsOpts := option.ApplyArgs(opts...)
	params := types.NewExValues()
	if symbol, ok := option.GetString(argsOpts.Symbol); ok {
		pair, err := ToTidexPair(symbol)
		if err != nil {
			return nil, err
		}
		params.Set("pair", pair)
	}

	data, err := privateCall[types.OrderedMap[tidexActiveOrder]](ctx, t, "ActiveOrders", params, argsOpts)
	if err != nil {
		return nil, err
	}

	orders, err := parseActiveOrders(data)
	if err != nil {
		return nil, &common.TransportError{Endpoint: "ActiveOrders", Params: params.Encode(), Err: err}
	}
	return orders, nil
}

// FetchOrder 查询订单（OrderInfo）
func (t *Tidex) FetchOrder(ctx context.Context, orderID int64, opts ...option.ArgsOption) (*model.Order, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, err
	}
	if orderID == 0 {
		return nil, common.NewValidationError("order_id", "order id is required")
	}

	params := types.NewExValues()
	params.Set("order_id", orderID)

	data, err := privateCall[types.OrderedMap[tidexOrderInfo]](ctx, t, "OrderInfo", params, option.ApplyArgs(opts...))
	if err != nil {
		return nil, err
	}

	order, err := parseOrderInfo(data)
	if err != nil {
		return nil, &common.TransportError{Endpoint: "OrderInfo", Params: params.Encode(), Err: err}
	}
	return order, nil
}

// CancelOrder 取消订单（CancelOrder），返回取消后的非零余额
func (t *Tidex) CancelOrder(ctx context.Context, orderID int64, opts ...option.ArgsOption) (model.Balances, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, err
	}
	if orderID == 0 {
		return nil, common.NewValidationError("order_id", "order id is required")
	}

	params := types.NewExValues()
	params.Set("order_id", orderID)

	data, err := privateCall[tidexCancelResult](ctx, t, "CancelOrder", params, option.ApplyArgs(opts...))
	if err != nil {
		return nil, err
	}
	return parseFunds(&data.Funds), nil
}

// FetchMyTrades 获取账户成交历史（TradeHistory），按交易对分组
// 支持 option.WithCount、option.WithFromID、option.WithSymbol
func (t *Tidex) FetchMyTrades(ctx context.Context, opts ...option.ArgsOption) ([]*model.Trades, error) {
	if err := t.checkCredentials(); err != nil {
		return nil, err
	}

	argsOpts := option.ApplyArgs(opts...)
	params := types.NewExValues()
	if count, ok := option.GetInt(argsOpts.Count); ok {
		params.Set("count", count)
	}
	if fromID, ok := option.GetInt64(argsOpts.FromID); ok {
		params.Set("from_id", fromID)
	}
	if symbol, ok := option.GetString(argsOpts.Symbol); ok {
		pair, err := ToTidexPair(symbol)
		if err != nil {
			return nil, err
		}
		params.Set("pair", pair)
	}

	data, err := privateCall[types.OrderedMap[tidexHistoryTrade]](ctx, t, "TradeHistory", params, argsOpts)
	if err != nil {
		return nil, err
	}

	trades, err := parseTradeHistory(data)
	if err != nil {
		return nil, &common.TransportError{Endpoint: "TradeHistory", Params: params.Encode(), Err: err}
	}
	return trades, nil
}
