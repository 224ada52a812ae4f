package tidex

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/lemconn/tidexlink/types"
)

// tidexFlag Tidex 用 0/1 表示布尔值，个别字段也会返回 true/false
// 只有 1 和 true 为真，其他值一律视为假
type tidexFlag bool

func (f *tidexFlag) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	*f = s == "1" || s == "true"
	return nil
}

// tidexStatus 所有响应共有的成功标记
type tidexStatus struct {
	Success *tidexFlag `json:"success"`
	Error   string     `json:"error"`
}

// publicFailed 公共接口只有显式返回 success=0 时才算失败
func (s tidexStatus) publicFailed() bool {
	return s.Success != nil && !bool(*s.Success)
}

// privateFailed 私有接口必须返回 success=1
func (s tidexStatus) privateFailed() bool {
	return s.Success == nil || !bool(*s.Success)
}

// tidexResponse 私有接口响应
type tidexResponse[T any] struct {
	Success tidexFlag `json:"success"`
	Return  T         `json:"return"`
	Error   string    `json:"error"`
}

// ========== 公共接口模型 ==========

// tidexInfoResponse info 接口响应
type tidexInfoResponse struct {
	ServerTime int64                          `json:"server_time"`
	Pairs      types.OrderedMap[tidexPairInfo] `json:"pairs"`
}

// tidexPairInfo 交易对信息
type tidexPairInfo struct {
	DecimalPlaces int             `json:"decimal_places"`
	MinPrice      types.ExDecimal `json:"min_price"`
	MaxPrice      types.ExDecimal `json:"max_price"`
	MinAmount     types.ExDecimal `json:"min_amount"`
	MaxAmount     types.ExDecimal `json:"max_amount"`
	MinTotal      types.ExDecimal `json:"min_total"`
	Hidden        tidexFlag       `json:"hidden"`
	Fee           types.ExDecimal `json:"fee"`
}

// tidexTicker ticker 接口数据项
type tidexTicker struct {
	High    types.ExDecimal `json:"high"`
	Low     types.ExDecimal `json:"low"`
	Avg     types.ExDecimal `json:"avg"`
	Vol     types.ExDecimal `json:"vol"`
	VolCur  types.ExDecimal `json:"vol_cur"`
	Last    types.ExDecimal `json:"last"`
	Buy     types.ExDecimal `json:"buy"`
	Sell    types.ExDecimal `json:"sell"`
	Updated int64           `json:"updated"`
}

// tidexDepth depth 接口数据项，每档为 [price, amount]
type tidexDepth struct {
	Asks [][]types.ExDecimal `json:"asks"`
	Bids [][]types.ExDecimal `json:"bids"`
}

// tidexPublicTrade trades 接口数据项
type tidexPublicTrade struct {
	Type      string          `json:"type"`
	Price     types.ExDecimal `json:"price"`
	Amount    types.ExDecimal `json:"amount"`
	Tid       *int64          `json:"tid"`
	Timestamp int64           `json:"timestamp"`
}

// ========== 私有接口模型 ==========

// tidexAccountInfo getInfo 返回
type tidexAccountInfo struct {
	Funds            types.OrderedMap[json.RawMessage] `json:"funds"`
	Rights           map[string]bool                   `json:"rights"`
	TransactionCount int64                             `json:"transaction_count"`
	OpenOrders       int                               `json:"open_orders"`
	ServerTime       int64                             `json:"server_time"`
}

// tidexFundExt getInfoExt 中单个币种的余额
type tidexFundExt struct {
	Value    types.ExDecimal `json:"value"`
	InOrders types.ExDecimal `json:"inOrders"`
}

// tidexAccountInfoExt getInfoExt 返回
type tidexAccountInfoExt struct {
	Funds            types.OrderedMap[tidexFundExt] `json:"funds"`
	Rights           map[string]bool                `json:"rights"`
	TransactionCount int64                          `json:"transaction_count"`
	OpenOrders       int                            `json:"open_orders"`
	ServerTime       int64                          `json:"server_time"`
}

// tidexTradeResult Trade 返回
type tidexTradeResult struct {
	Received    types.ExDecimal                   `json:"received"`
	Remains     types.ExDecimal                   `json:"remains"`
	OrderID     int64                             `json:"order_id"`
	InitOrderID int64                             `json:"init_order_id"`
	Funds       types.OrderedMap[json.RawMessage] `json:"funds"`
}

// tidexActiveOrder ActiveOrders 返回的订单
type tidexActiveOrder struct {
	Pair             string          `json:"pair"`
	Type             string          `json:"type"`
	Amount           types.ExDecimal `json:"amount"`
	Rate             types.ExDecimal `json:"rate"`
	TimestampCreated int64           `json:"timestamp_created"`
	Status           *int            `json:"status"`
}

// tidexOrderInfo OrderInfo 返回的订单
type tidexOrderInfo struct {
	Pair             string          `json:"pair"`
	Type             string          `json:"type"`
	StartAmount      types.ExDecimal `json:"start_amount"`
	Amount           types.ExDecimal `json:"amount"`
	Rate             types.ExDecimal `json:"rate"`
	TimestampCreated int64           `json:"timestamp_created"`
	Status           *int            `json:"status"`
}

// tidexCancelResult CancelOrder 返回
type tidexCancelResult struct {
	OrderID int64                             `json:"order_id"`
	Funds   types.OrderedMap[json.RawMessage] `json:"funds"`
}

// tidexHistoryTrade TradeHistory 返回的成交
type tidexHistoryTrade struct {
	TradeID     *int64          `json:"trade_id"`
	Pair        string          `json:"pair"`
	Type        string          `json:"type"`
	Amount      types.ExDecimal `json:"amount"`
	Rate        types.ExDecimal `json:"rate"`
	OrderID     *int64          `json:"order_id"`
	IsYourOrder tidexFlag       `json:"is_your_order"`
	Timestamp   int64           `json:"timestamp"`
}
