package model

import "github.com/shopspring/decimal"

// OrderBookEntry 订单簿条目
type OrderBookEntry struct {
	// Price 价格
	Price decimal.Decimal `json:"price"`
	// Amount 数量
	Amount decimal.Decimal `json:"amount"`
}

// OrderBook 订单簿，档位顺序与交易所返回一致
type OrderBook struct {
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Base 基础货币
	Base string `json:"base"`
	// Quote 计价货币
	Quote string `json:"quote"`
	// Asks 卖单列表
	Asks []OrderBookEntry `json:"asks"`
	// Bids 买单列表
	Bids []OrderBookEntry `json:"bids"`
}
