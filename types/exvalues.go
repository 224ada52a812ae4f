package types

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ExValues 有序的表单参数容器
//
// 键按首次出现的顺序编码，重复 Set 同一个键只替换值、不改变位置，
// 这样签名串与实际发送的请求体逐字节一致。
type ExValues struct {
	order  []string
	values map[string]string
}

// NewExValues creates a new ExValues instance.
func NewExValues() *ExValues {
	return &ExValues{
		order:  make([]string, 0),
		values: make(map[string]string),
	}
}

// Set 设置参数值，value 会按类型格式化为字符串
func (v *ExValues) Set(key string, value any) {
	if _, exists := v.values[key]; !exists {
		v.order = append(v.order, key)
	}
	v.values[key] = FormatValue(value)
}

// Has reports whether the given key exists.
func (v *ExValues) Has(key string) bool {
	_, ok := v.values[key]
	return ok
}

// Get returns the value associated with the given key.
func (v *ExValues) Get(key string) string {
	return v.values[key]
}

// Len 参数个数
func (v *ExValues) Len() int {
	return len(v.order)
}

// Keys 按编码顺序返回所有键
func (v *ExValues) Keys() []string {
	keys := make([]string, len(v.order))
	copy(keys, v.order)
	return keys
}

// Clone 复制一份参数，修改副本不影响原值
func (v *ExValues) Clone() *ExValues {
	c := NewExValues()
	for _, key := range v.order {
		c.order = append(c.order, key)
		c.values[key] = v.values[key]
	}
	return c
}

// Encode 编码为 application/x-www-form-urlencoded 字符串
func (v *ExValues) Encode() string {
	var buf strings.Builder
	for _, key := range v.order {
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(v.values[key]))
	}
	return buf.String()
}

// FormatValue 将参数值格式化为字符串
func FormatValue(value any) string {
	switch val := value.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case decimal.Decimal:
		return val.String()
	case ExDecimal:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
