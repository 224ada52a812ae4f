package model

import "github.com/shopspring/decimal"

// Balance 余额信息
type Balance struct {
	// Currency 币种
	Currency string `json:"currency"`
	// Free 可用余额
	Free decimal.Decimal `json:"free"`
	// Used 冻结余额
	Used decimal.Decimal `json:"used"`
	// Total 总余额
	Total decimal.Decimal `json:"total"`
}

// Balances 余额列表
type Balances []*Balance

// GetBalance 获取指定币种余额，不存在时返回零值余额
func (b Balances) GetBalance(currency string) *Balance {
	for _, balance := range b {
		if balance.Currency == currency {
			return balance
		}
	}
	return &Balance{
		Currency: currency,
		Free:     decimal.Zero,
		Used:     decimal.Zero,
		Total:    decimal.Zero,
	}
}

// AccountInfo 账户信息
type AccountInfo struct {
	// Balances 非零余额
	Balances Balances `json:"balances"`
	// OpenOrdersCount 未完成订单数
	OpenOrdersCount int `json:"open_orders_count"`
	// Rights API Key 权限，如 info/trade/withdraw
	Rights map[string]bool `json:"rights"`
}
