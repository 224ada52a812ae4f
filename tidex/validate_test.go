package tidex

import (
	"errors"
	"strings"
	"testing"

	"github.com/lemconn/tidexlink/common"
	"github.com/lemconn/tidexlink/model"
)

func testMarket() *model.Market {
	m := &model.Market{ID: "eth_btc", Symbol: "ETH/BTC", Base: "ETH", Quote: "BTC", Precision: 8}
	m.Limits.Price.Min = dec("0.0001")
	m.Limits.Price.Max = dec("10")
	m.Limits.Amount.Min = dec("0.01")
	m.Limits.Amount.Max = dec("1000")
	m.Limits.Total.Min = dec("0.001")
	return m
}

func TestValidateLimit(t *testing.T) {
	limit := func(v int) *int { return &v }

	if got, err := ValidateLimit(nil); err != nil || got != 0 {
		t.Errorf("ValidateLimit(nil) = %d, %v", got, err)
	}
	if got, err := ValidateLimit(limit(0)); err != nil || got != 0 {
		t.Errorf("ValidateLimit(0) = %d, %v", got, err)
	}
	if got, err := ValidateLimit(limit(MaxLimit)); err != nil || got != MaxLimit {
		t.Errorf("ValidateLimit(%d) = %d, %v", MaxLimit, got, err)
	}

	for _, v := range []int{MaxLimit + 1, -1} {
		_, err := ValidateLimit(limit(v))
		var vErr *common.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "limit" {
			t.Errorf("ValidateLimit(%d) error = %v, want limit ValidationError", v, err)
		}
	}
}

func TestValidateLimitOrder(t *testing.T) {
	market := testMarket()

	tests := []struct {
		name    string
		price   string
		amount  string
		side    model.OrderSide
		field   string
		message string
	}{
		{"ok", "0.05", "1", model.OrderSideBuy, "", ""},
		{"bad_side", "0.05", "1", model.OrderSide("hold"), "side", "side should be"},
		{"zero_price", "0", "1", model.OrderSideBuy, "price", "price is required"},
		{"max_price_before_amount", "11", "0", model.OrderSideBuy, "price", "price should be less than or equal to maxPrice '10' for ETH/BTC market"},
		{"min_price", "0.00001", "1", model.OrderSideSell, "price", "minPrice '0.0001'"},
		{"zero_amount", "0.05", "0", model.OrderSideBuy, "amount", "amount is required"},
		{"max_amount", "0.05", "1001", model.OrderSideBuy, "amount", "maxAmount '1000'"},
		{"min_amount", "0.05", "0.001", model.OrderSideBuy, "amount", "minAmount '0.01'"},
		{"min_total", "0.0001", "1", model.OrderSideBuy, "total", "current total: 0.0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLimitOrder(market, dec(tt.price), dec(tt.amount), tt.side)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var vErr *common.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("field = %q, want %q", vErr.Field, tt.field)
			}
			if !strings.Contains(vErr.Error(), tt.message) {
				t.Errorf("message %q does not contain %q", vErr.Error(), tt.message)
			}
		})
	}
}
