package tidex

import (
	"strings"

	"github.com/lemconn/tidexlink/common"
)

// ToTidexPair 转换为 Tidex 格式的交易对
// BTC/USDT -> btc_usdt
func ToTidexPair(symbol string) (string, error) {
	base, quote, err := common.ParseSymbol(symbol)
	if err != nil {
		return "", err
	}
	return strings.ToLower(base) + "_" + strings.ToLower(quote), nil
}

// FromTidexPair 从 Tidex 格式转换
// btc_usdt -> BTC, USDT
func FromTidexPair(pair string) (base, quote string, err error) {
	return common.SplitPair(pair, "_")
}

// JoinTidexPairs 将多个交易对转换后用 "-" 连接，用于公共接口路径
// [BTC/USDT, ETH/BTC] -> btc_usdt-eth_btc
func JoinTidexPairs(symbols []string) (string, error) {
	pairs := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		pair, err := ToTidexPair(symbol)
		if err != nil {
			return "", err
		}
		pairs = append(pairs, pair)
	}
	return strings.Join(pairs, "-"), nil
}
