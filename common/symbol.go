package common

import (
	"strings"
)

// NormalizeSymbol 标准化交易对格式为 BASE/QUOTE (如 BTC/USDT)
func NormalizeSymbol(base, quote string) string {
	return strings.ToUpper(base) + "/" + strings.ToUpper(quote)
}

// SplitPair 按分隔符拆分交易对，要求恰好一个分隔符且两侧非空
// 返回值为大写的 base 和 quote
func SplitPair(pair, sep string) (base, quote string, err error) {
	parts := strings.Split(pair, sep)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", &ValidationError{
			Field:   "symbol",
			Message: "invalid symbol format: " + pair + ", expected BASE" + sep + "QUOTE",
		}
	}
	return strings.ToUpper(parts[0]), strings.ToUpper(parts[1]), nil
}

// ParseSymbol 解析标准化交易对 (BTC/USDT -> base, quote)
func ParseSymbol(symbol string) (base, quote string, err error) {
	return SplitPair(symbol, "/")
}
