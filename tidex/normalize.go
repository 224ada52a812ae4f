package tidex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/lemconn/tidexlink/common"
	"github.com/lemconn/tidexlink/model"
	"github.com/lemconn/tidexlink/types"
	"github.com/shopspring/decimal"
)

// parseMarkets 解析 info 接口，跳过 hidden 的交易对
func parseMarkets(data *tidexInfoResponse) (model.Markets, error) {
	markets := make(model.Markets, 0, data.Pairs.Len())
	for _, pair := range data.Pairs.Keys() {
		info, _ := data.Pairs.Get(pair)
		if info.Hidden {
			continue
		}

		base, quote, err := FromTidexPair(pair)
		if err != nil {
			return nil, err
		}

		market := &model.Market{
			ID:        pair,
			Symbol:    common.NormalizeSymbol(base, quote),
			Base:      base,
			Quote:     quote,
			Precision: info.DecimalPlaces,
			Fee:       info.Fee.Decimal,
		}
		market.Limits.Price.Min = info.MinPrice.Decimal
		market.Limits.Price.Max = info.MaxPrice.Decimal
		market.Limits.Amount.Min = info.MinAmount.Decimal
		market.Limits.Amount.Max = info.MaxAmount.Decimal
		market.Limits.Total.Min = info.MinTotal.Decimal

		markets = append(markets, market)
	}
	return markets, nil
}

// parseTickers 解析 ticker 接口
// Tidex 的 sell 是卖一价（ask），buy 是买一价（bid）
func parseTickers(data *types.OrderedMap[tidexTicker]) (model.Tickers, error) {
	tickers := make(model.Tickers, 0, data.Len())
	for _, pair := range data.Keys() {
		item, _ := data.Get(pair)
		base, quote, err := FromTidexPair(pair)
		if err != nil {
			return nil, err
		}
		tickers = append(tickers, &model.Ticker{
			Symbol:      common.NormalizeSymbol(base, quote),
			Base:        base,
			Quote:       quote,
			Ask:         item.Sell.Decimal,
			Bid:         item.Buy.Decimal,
			Last:        item.Last.Decimal,
			High:        item.High.Decimal,
			Low:         item.Low.Decimal,
			Avg:         item.Avg.Decimal,
			BaseVolume:  item.VolCur.Decimal,
			QuoteVolume: item.Vol.Decimal,
		})
	}
	return tickers, nil
}

// parseOrderBooks 解析 depth 接口，档位顺序保持不变
func parseOrderBooks(data *types.OrderedMap[tidexDepth]) ([]*model.OrderBook, error) {
	books := make([]*model.OrderBook, 0, data.Len())
	for _, pair := range data.Keys() {
		item, _ := data.Get(pair)
		base, quote, err := FromTidexPair(pair)
		if err != nil {
			return nil, err
		}
		asks, err := parseLevels(item.Asks)
		if err != nil {
			return nil, fmt.Errorf("%s asks: %w", pair, err)
		}
		bids, err := parseLevels(item.Bids)
		if err != nil {
			return nil, fmt.Errorf("%s bids: %w", pair, err)
		}
		books = append(books, &model.OrderBook{
			Symbol: common.NormalizeSymbol(base, quote),
			Base:   base,
			Quote:  quote,
			Asks:   asks,
			Bids:   bids,
		})
	}
	return books, nil
}

func parseLevels(levels [][]types.ExDecimal) ([]model.OrderBookEntry, error) {
	entries := make([]model.OrderBookEntry, 0, len(levels))
	for i, level := range levels {
		if len(level) < 2 {
			return nil, fmt.Errorf("level %d: expected [price, amount], got %d values", i, len(level))
		}
		entries = append(entries, model.OrderBookEntry{
			Price:  level[0].Decimal,
			Amount: level[1].Decimal,
		})
	}
	return entries, nil
}

// parseTrades 解析 trades 接口
func parseTrades(data *types.OrderedMap[[]tidexPublicTrade]) ([]*model.Trades, error) {
	result := make([]*model.Trades, 0, data.Len())
	for _, pair := range data.Keys() {
		items, _ := data.Get(pair)
		base, quote, err := FromTidexPair(pair)
		if err != nil {
			return nil, err
		}
		trades := make([]*model.Trade, 0, len(items))
		for _, item := range items {
			trades = append(trades, &model.Trade{
				Side:      parseSide(item.Type),
				Amount:    item.Amount.Decimal,
				Price:     item.Price.Decimal,
				Timestamp: item.Timestamp,
				TradeID:   item.Tid,
			})
		}
		result = append(result, &model.Trades{
			Symbol: common.NormalizeSymbol(base, quote),
			Base:   base,
			Quote:  quote,
			Trades: trades,
		})
	}
	return result, nil
}

// parseSide 公共成交的 type 为 ask/bid，私有成交为 sell/buy
func parseSide(t string) model.OrderSide {
	switch strings.ToLower(t) {
	case "ask", "sell":
		return model.OrderSideSell
	default:
		return model.OrderSideBuy
	}
}

// parseOrderStatus 解析订单状态码，未知或缺失时返回 OrderStatusUnknown
func parseOrderStatus(code *int) model.OrderStatus {
	if code == nil {
		return model.OrderStatusUnknown
	}
	switch *code {
	case 0:
		return model.OrderStatusActive
	case 1:
		return model.OrderStatusClosed
	case 2:
		return model.OrderStatusCancelled
	case 3:
		return model.OrderStatusCancelledPartially
	default:
		return model.OrderStatusUnknown
	}
}

// parseFunds 解析 currency -> number 的余额，只保留大于 0 的币种
// funds 中可能夹带非数字字段，直接跳过
func parseFunds(funds *types.OrderedMap[json.RawMessage]) model.Balances {
	balances := make(model.Balances, 0)
	for _, currency := range funds.Keys() {
		raw, _ := funds.Get(currency)
		var value types.ExDecimal
		if err := json.Unmarshal(raw, &value); err != nil {
			continue
		}
		if !value.IsPositive() {
			continue
		}
		balances = append(balances, &model.Balance{
			Currency: strings.ToUpper(currency),
			Free:     decimal.Zero,
			Used:     decimal.Zero,
			Total:    value.Decimal,
		})
	}
	return balances
}

// parseFundsExt 解析 currency -> {value, inOrders}，可用或冻结任一大于 0 即保留
func parseFundsExt(funds *types.OrderedMap[tidexFundExt]) model.Balances {
	balances := make(model.Balances, 0)
	for _, currency := range funds.Keys() {
		fund, _ := funds.Get(currency)
		if !fund.Value.IsPositive() && !fund.InOrders.IsPositive() {
			continue
		}
		balances = append(balances, &model.Balance{
			Currency: strings.ToUpper(currency),
			Free:     fund.Value.Decimal,
			Used:     fund.InOrders.Decimal,
			Total:    fund.Value.Add(fund.InOrders.Decimal),
		})
	}
	return balances
}

func parseAccountInfo(data *tidexAccountInfo) *model.AccountInfo {
	return &model.AccountInfo{
		Balances:        parseFunds(&data.Funds),
		OpenOrdersCount: data.OpenOrders,
		Rights:          data.Rights,
	}
}

func parseAccountInfoExt(data *tidexAccountInfoExt) *model.AccountInfo {
	return &model.AccountInfo{
		Balances:        parseFundsExt(&data.Funds),
		OpenOrdersCount: data.OpenOrders,
		Rights:          data.Rights,
	}
}

// parseCreatedOrder 解析 Trade 返回
// order_id 为 0 表示订单已立即全部成交，remains 为 0 同理
func parseCreatedOrder(data *tidexTradeResult, market *model.Market, side model.OrderSide, price decimal.Decimal, created int64) *model.Order {
	status := model.OrderStatusActive
	if data.OrderID == 0 || data.Remains.IsZero() {
		status = model.OrderStatusClosed
	}
	return &model.Order{
		ID:      data.InitOrderID,
		Symbol:  market.Symbol,
		Base:    market.Base,
		Quote:   market.Quote,
		Side:    side,
		Amount:  data.Received.Add(data.Remains.Decimal),
		Remain:  data.Remains.Decimal,
		Price:   price,
		Created: created,
		Status:  status,
	}
}

// parseActiveOrders 解析 ActiveOrders 返回，该接口只返回未完成订单
func parseActiveOrders(data *types.OrderedMap[tidexActiveOrder]) ([]*model.Order, error) {
	orders := make([]*model.Order, 0, data.Len())
	for _, key := range data.Keys() {
		item, _ := data.Get(key)
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid order id %q: %w", key, err)
		}
		base, quote, err := FromTidexPair(item.Pair)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &model.Order{
			ID:      id,
			Symbol:  common.NormalizeSymbol(base, quote),
			Base:    base,
			Quote:   quote,
			Side:    parseSide(item.Type),
			Amount:  item.Amount.Decimal,
			Remain:  item.Amount.Decimal,
			Price:   item.Rate.Decimal,
			Created: item.TimestampCreated,
			Status:  model.OrderStatusActive,
		})
	}
	return orders, nil
}

// parseOrderInfo 解析 OrderInfo 返回，取第一个订单
func parseOrderInfo(data *types.OrderedMap[tidexOrderInfo]) (*model.Order, error) {
	if data.Len() == 0 {
		return nil, fmt.Errorf("empty order info")
	}
	key := data.Keys()[0]
	item, _ := data.Get(key)
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid order id %q: %w", key, err)
	}
	base, quote, err := FromTidexPair(item.Pair)
	if err != nil {
		return nil, err
	}
	return &model.Order{
		ID:      id,
		Symbol:  common.NormalizeSymbol(base, quote),
		Base:    base,
		Quote:   quote,
		Side:    parseSide(item.Type),
		Amount:  item.StartAmount.Decimal,
		Remain:  item.Amount.Decimal,
		Price:   item.Rate.Decimal,
		Created: item.TimestampCreated,
		Status:  parseOrderStatus(item.Status),
	}, nil
}

// parseTradeHistory 按交易对分组，交易对与成交的顺序都与交易所返回一致
func parseTradeHistory(data *types.OrderedMap[tidexHistoryTrade]) ([]*model.Trades, error) {
	result := make([]*model.Trades, 0)
	byPair := make(map[string]*model.Trades)
	for _, key := range data.Keys() {
		item, _ := data.Get(key)

		tradeID := item.TradeID
		if tradeID == nil {
			id, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid trade id %q: %w", key, err)
			}
			tradeID = &id
		}

		group, ok := byPair[item.Pair]
		if !ok {
			base, quote, err := FromTidexPair(item.Pair)
			if err != nil {
				return nil, err
			}
			group = &model.Trades{
				Symbol: common.NormalizeSymbol(base, quote),
				Base:   base,
				Quote:  quote,
				Trades: make([]*model.Trade, 0),
			}
			byPair[item.Pair] = group
			result = append(result, group)
		}

		group.Trades = append(group.Trades, &model.Trade{
			Side:      parseSide(item.Type),
			Amount:    item.Amount.Decimal,
			Price:     item.Rate.Decimal,
			Timestamp: item.Timestamp,
			TradeID:   tradeID,
			OrderID:   item.OrderID,
		})
	}
	return result, nil
}
