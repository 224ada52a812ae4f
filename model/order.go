package model

import "github.com/shopspring/decimal"

// OrderSide 订单方向
type OrderSide string

const (
	// OrderSideBuy 买入
	OrderSideBuy OrderSide = "buy"
	// OrderSideSell 卖出
	OrderSideSell OrderSide = "sell"
)

// IsValid 是否为 buy 或 sell
func (s OrderSide) IsValid() bool {
	return s == OrderSideBuy || s == OrderSideSell
}

// OrderStatus 订单状态
type OrderStatus string

const (
	// OrderStatusActive 未完成
	OrderStatusActive OrderStatus = "active"
	// OrderStatusClosed 已完全成交
	OrderStatusClosed OrderStatus = "closed"
	// OrderStatusCancelled 已取消
	OrderStatusCancelled OrderStatus = "cancelled"
	// OrderStatusCancelledPartially 部分成交后取消
	OrderStatusCancelledPartially OrderStatus = "cancelled_partially"
	// OrderStatusUnknown 交易所未返回或返回了无法识别的状态码
	OrderStatusUnknown OrderStatus = "unknown"
)

// Order 订单信息
type Order struct {
	// ID 订单ID
	ID int64 `json:"id"`
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Base 基础货币
	Base string `json:"base"`
	// Quote 计价货币
	Quote string `json:"quote"`
	// Side 订单方向
	Side OrderSide `json:"side"`
	// Amount 订单原始数量
	Amount decimal.Decimal `json:"amount"`
	// Remain 未成交数量
	Remain decimal.Decimal `json:"remain"`
	// Price 订单价格
	Price decimal.Decimal `json:"price"`
	// Created 创建时间（unix 秒），部分接口不返回时为 0
	Created int64 `json:"created,omitempty"`
	// Status 订单状态
	Status OrderStatus `json:"status"`
}
