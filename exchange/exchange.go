package exchange

import (
	"context"

	"github.com/lemconn/tidexlink/model"
	"github.com/lemconn/tidexlink/option"
	"github.com/shopspring/decimal"
)

// Exchange 交易所接口
type Exchange interface {
	// Name 返回交易所名称
	Name() string

	// ========== 市场数据 ==========

	// FetchMarkets 获取市场列表，reload 为 false 时优先使用缓存
	FetchMarkets(ctx context.Context, reload bool) (model.Markets, error)

	// GetMarket 获取单个市场信息
	GetMarket(ctx context.Context, symbol string) (*model.Market, error)

	// FetchTickers 批量获取行情，symbols 为空时获取全部市场
	FetchTickers(ctx context.Context, symbols ...string) (model.Tickers, error)

	// FetchOrderBooks 获取订单簿
	FetchOrderBooks(ctx context.Context, opts ...option.ArgsOption) ([]*model.OrderBook, error)

	// FetchTrades 获取最近成交
	FetchTrades(ctx context.Context, opts ...option.ArgsOption) ([]*model.Trades, error)

	// ========== 账户信息 ==========

	// FetchAccountInfo 获取账户信息
	FetchAccountInfo(ctx context.Context, opts ...option.ArgsOption) (*model.AccountInfo, error)

	// FetchAccountInfoExtended 获取账户信息（区分可用与冻结）
	FetchAccountInfoExtended(ctx context.Context, opts ...option.ArgsOption) (*model.AccountInfo, error)

	// ========== 订单操作 ==========

	// CreateLimitOrder 创建限价单
	CreateLimitOrder(ctx context.Context, symbol string, price, amount decimal.Decimal, side model.OrderSide, opts ...option.ArgsOption) (*model.Order, error)

	// FetchOpenOrders 获取未完成订单
	FetchOpenOrders(ctx context.Context, opts ...option.ArgsOption) ([]*model.Order, error)

	// FetchOrder 查询订单
	FetchOrder(ctx context.Context, orderID int64, opts ...option.ArgsOption) (*model.Order, error)

	// CancelOrder 取消订单
	CancelOrder(ctx context.Context, orderID int64, opts ...option.ArgsOption) (model.Balances, error)

	// ========== 交易记录 ==========

	// FetchMyTrades 获取账户成交历史
	FetchMyTrades(ctx context.Context, opts ...option.ArgsOption) ([]*model.Trades, error)
}
