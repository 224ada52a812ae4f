package model

import "github.com/shopspring/decimal"

// Market 市场信息
type Market struct {
	// ID 交易所格式的交易对，如 "eth_btc"
	ID string `json:"id"`

	// Symbol 交易对符号（统一格式），如 "ETH/BTC"
	Symbol string `json:"symbol"`

	// Base 基础货币，如 "ETH"
	Base string `json:"base"`

	// Quote 计价货币，如 "BTC"
	Quote string `json:"quote"`

	// Precision 价格与数量的小数位数
	Precision int `json:"precision"`

	// Fee 手续费（百分比）
	Fee decimal.Decimal `json:"fee"`

	// Limits 限制信息
	Limits struct {
		// Price 价格限制
		Price struct {
			Min decimal.Decimal `json:"min"`
			Max decimal.Decimal `json:"max"`
		} `json:"price"`
		// Amount 数量限制
		Amount struct {
			Min decimal.Decimal `json:"min"`
			Max decimal.Decimal `json:"max"`
		} `json:"amount"`
		// Total 成交额（price*amount）下限
		Total struct {
			Min decimal.Decimal `json:"min"`
		} `json:"total"`
	} `json:"limits"`
}

// Markets 市场列表
type Markets []*Market

// Find 按统一格式的交易对查找市场
func (m Markets) Find(symbol string) (*Market, bool) {
	for _, market := range m {
		if market.Symbol == symbol {
			return market, true
		}
	}
	return nil, false
}

// Symbols 返回所有交易对（统一格式），顺序与列表一致
func (m Markets) Symbols() []string {
	symbols := make([]string, 0, len(m))
	for _, market := range m {
		symbols = append(symbols, market.Symbol)
	}
	return symbols
}
