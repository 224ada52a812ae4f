package tidex

import (
	"github.com/lemconn/tidexlink/common"
	"github.com/lemconn/tidexlink/model"
	"github.com/shopspring/decimal"
)

// MaxLimit depth / trades 接口 limit 的上限
const MaxLimit = 2000

// ValidateLimit 校验 limit，返回 0 表示不传 limit
func ValidateLimit(limit *int) (int, error) {
	if limit == nil || *limit == 0 {
		return 0, nil
	}
	if *limit < 0 {
		return 0, common.NewValidationError("limit", "limit should be positive, got %d", *limit)
	}
	if *limit > MaxLimit {
		return 0, common.NewValidationError("limit", "max limit is %d, got %d", MaxLimit, *limit)
	}
	return *limit, nil
}

// ValidateLimitOrder 按市场限制校验限价单，依次检查方向、价格、数量、成交额
func ValidateLimitOrder(market *model.Market, price, amount decimal.Decimal, side model.OrderSide) error {
	symbol := market.Symbol

	if !side.IsValid() {
		return common.NewValidationError("side", "side should be 'buy' or 'sell', got '%s'", side)
	}

	if price.IsZero() {
		return common.NewValidationError("price", "price is required for limit order")
	}
	if price.GreaterThan(market.Limits.Price.Max) {
		return common.NewValidationError("price", "price should be less than or equal to maxPrice '%s' for %s market",
			market.Limits.Price.Max, symbol)
	}
	if price.LessThan(market.Limits.Price.Min) {
		return common.NewValidationError("price", "price should be greater than or equal to minPrice '%s' for %s market",
			market.Limits.Price.Min, symbol)
	}

	if amount.IsZero() {
		return common.NewValidationError("amount", "amount is required for limit order")
	}
	if amount.GreaterThan(market.Limits.Amount.Max) {
		return common.NewValidationError("amount", "amount should be less than or equal to maxAmount '%s' for %s market",
			market.Limits.Amount.Max, symbol)
	}
	if amount.LessThan(market.Limits.Amount.Min) {
		return common.NewValidationError("amount", "amount should be greater than or equal to minAmount '%s' for %s market",
			market.Limits.Amount.Min, symbol)
	}

	total := price.Mul(amount)
	if total.LessThan(market.Limits.Total.Min) {
		return common.NewValidationError("total", "total should be greater than or equal to minTotal '%s' for %s market, current total: %s",
			market.Limits.Total.Min, symbol, total)
	}

	return nil
}
