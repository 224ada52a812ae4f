package model

import "github.com/shopspring/decimal"

// Trade 成交记录
type Trade struct {
	// Side 方向
	Side OrderSide `json:"side"`
	// Amount 数量
	Amount decimal.Decimal `json:"amount"`
	// Price 价格
	Price decimal.Decimal `json:"price"`
	// Timestamp 成交时间（unix 秒）
	Timestamp int64 `json:"timestamp"`
	// TradeID 成交ID，交易所未返回时为 nil
	TradeID *int64 `json:"trade_id,omitempty"`
	// OrderID 订单ID，交易所未返回时为 nil
	OrderID *int64 `json:"order_id,omitempty"`
}

// Trades 同一交易对下的成交记录
type Trades struct {
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Base 基础货币
	Base string `json:"base"`
	// Quote 计价货币
	Quote string `json:"quote"`
	// Trades 成交列表，顺序与交易所返回一致
	Trades []*Trade `json:"trades"`
}
