package model

import "github.com/shopspring/decimal"

// Ticker 行情信息
type Ticker struct {
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Base 基础货币
	Base string `json:"base"`
	// Quote 计价货币
	Quote string `json:"quote"`
	// Ask 卖一价（买方需要支付的最低价）
	Ask decimal.Decimal `json:"ask"`
	// Bid 买一价
	Bid decimal.Decimal `json:"bid"`
	// Last 最新价
	Last decimal.Decimal `json:"last"`
	// High 最高价
	High decimal.Decimal `json:"high"`
	// Low 最低价
	Low decimal.Decimal `json:"low"`
	// Avg 均价
	Avg decimal.Decimal `json:"avg"`
	// BaseVolume 基础货币成交量
	BaseVolume decimal.Decimal `json:"base_volume"`
	// QuoteVolume 计价货币成交量
	QuoteVolume decimal.Decimal `json:"quote_volume"`
}

// Tickers 行情信息数组
type Tickers []*Ticker
