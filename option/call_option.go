package option

// ExchangeArgsOptions 方法调用参数选项（用于 Exchange 方法调用）
type ExchangeArgsOptions struct {
	// ========== 公共接口参数 ==========
	// Limit 订单簿每侧档位数或成交条数，最大 2000
	Limit *int
	// Symbols 交易对列表，为空时使用全部市场
	Symbols []string

	// ========== 私有接口参数 ==========
	// Symbol 单个交易对过滤（ActiveOrders / TradeHistory）
	Symbol *string
	// Count 返回条数（TradeHistory）
	Count *int
	// FromID 起始成交ID（TradeHistory）
	FromID *int64
	// Nonce 本次私有请求使用的 nonce
	Nonce *int64
}

// ArgsOption 方法调用参数选项函数类型
type ArgsOption func(*ExchangeArgsOptions)

// ApplyArgs 应用所有调用参数选项
func ApplyArgs(opts ...ArgsOption) *ExchangeArgsOptions {
	argsOpts := &ExchangeArgsOptions{}
	for _, opt := range opts {
		opt(argsOpts)
	}
	return argsOpts
}

// WithLimit 设置限制返回数量
func WithLimit(limit int) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.Limit = &limit
	}
}

// WithSymbols 设置交易对列表
func WithSymbols(symbols ...string) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.Symbols = symbols
	}
}

// WithSymbol 设置单个交易对过滤
func WithSymbol(symbol string) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.Symbol = &symbol
	}
}

// WithCount 设置返回条数
func WithCount(count int) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.Count = &count
	}
}

// WithFromID 设置起始成交ID
func WithFromID(fromID int64) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.FromID = &fromID
	}
}

// WithNonce 设置本次私有请求的 nonce
func WithNonce(nonce int64) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.Nonce = &nonce
	}
}
