package types

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// ExDecimal 支持空字符串、null 和数字/字符串两种编码的 decimal.Decimal
// Tidex 对缺省字段可能返回 null，也可能直接省略
type ExDecimal struct {
	decimal.Decimal
}

// UnmarshalJSON 自定义 JSON 反序列化，空值解析为 0
func (d *ExDecimal) UnmarshalJSON(data []byte) error {
	s := bytes.TrimSpace(data)
	if len(s) == 0 || bytes.Equal(s, []byte("null")) || bytes.Equal(s, []byte(`""`)) {
		d.Decimal = decimal.Zero
		return nil
	}
	return d.Decimal.UnmarshalJSON(s)
}
