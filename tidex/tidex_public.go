package tidex

import (
	"context"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/lemconn/tidexlink/common"
	"github.com/lemconn/tidexlink/model"
	"github.com/lemconn/tidexlink/option"
	"github.com/lemconn/tidexlink/types"
)

// publicRequest 请求公共接口 <endpoint>/<query> 并解析到 out
func (t *Tidex) publicRequest(ctx context.Context, endpoint, query string, out interface{}) error {
	path := "/" + endpoint
	if query != "" {
		path += "/" + query
	}

	resp, err := t.client.Public.Get(ctx, path)
	if err != nil {
		return &common.TransportError{Endpoint: endpoint, Params: query, Err: err}
	}

	var status tidexStatus
	if err := json.Unmarshal(resp, &status); err == nil && status.publicFailed() {
		return &common.ExchangeError{Message: status.Error}
	}

	if err := json.Unmarshal(resp, out); err != nil {
		return &common.TransportError{Endpoint: endpoint, Params: query, Err: err}
	}
	return nil
}

// pairQuery 构建交易对路径，symbols 为空时使用全部市场
func (t *Tidex) pairQuery(ctx context.Context, symbols []string) (string, error) {
	if len(symbols) == 0 {
		markets, err := t.FetchMarkets(ctx, false)
		if err != nil {
			return "", err
		}
		symbols = markets.Symbols()
	}
	return JoinTidexPairs(symbols)
}

// limitedPairQuery 在交易对路径后追加 ?limit=N
// limit 在任何网络请求之前校验
func (t *Tidex) limitedPairQuery(ctx context.Context, argsOpts *option.ExchangeArgsOptions) (string, error) {
	limit, err := ValidateLimit(argsOpts.Limit)
	if err != nil {
		return "", err
	}
	query, err := t.pairQuery(ctx, argsOpts.Symbols)
	if err != nil {
		return "", err
	}
	if limit > 0 {
		query += "?limit=" + strconv.Itoa(limit)
	}
	return query, nil
}

// FetchTickers 批量获取行情，symbols 为空时获取全部市场
func (t *Tidex) FetchTickers(ctx context.Context, symbols ...string) (model.Tickers, error) {
	query, err := t.pairQuery(ctx, symbols)
	if err != nil {
		return nil, err
	}

	var data types.OrderedMap[tidexTicker]
	if err := t.publicRequest(ctx, "ticker", query, &data); err != nil {
		return nil, err
	}

	tickers, err := parseTickers(&data)
	if err != nil {
		return nil, &common.TransportError{Endpoint: "ticker", Params: query, Err: err}
	}
	return tickers, nil
}

// FetchOrderBooks 获取订单簿
// 支持 option.WithSymbols、option.WithLimit
func (t *Tidex) FetchOrderBooks(ctx context.Context, opts ...option.ArgsOption) ([]*model.OrderBook, error) {
	query, err := t.limitedPairQuery(ctx, option.ApplyArgs(opts...))
	if err != nil {
		return nil, err
	}

	var data types.OrderedMap[tidexDepth]
	if err := t.publicRequest(ctx, "depth", query, &data); err != nil {
		return nil, err
	}

	books, err := parseOrderBooks(&data)
	if err != nil {
		return nil, &common.TransportError{Endpoint: "depth", Params: query, Err: err}
	}
	return books, nil
}

// FetchTrades 获取最近成交
// 支持 option.WithSymbols、option.WithLimit
func (t *Tidex) FetchTrades(ctx context.Context, opts ...option.ArgsOption) ([]*model.Trades, error) {
	query, err := t.limitedPairQuery(ctx, option.ApplyArgs(opts...))
	if err != nil {
		return nil, err
	}

	var data types.OrderedMap[[]tidexPublicTrade]
	if err := t.publicRequest(ctx, "trades", query, &data); err != nil {
		return nil, err
	}

	trades, err := parseTrades(&data)
	if err != nil {
		return nil, &common.TransportError{Endpoint: "trades", Params: query, Err: err}
	}
	return trades, nil
}
