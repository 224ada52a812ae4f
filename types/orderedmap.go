package types

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"

	"github.com/goccy/go-json"
)

// OrderedMap 保留 JSON 对象键顺序的 map
// Tidex 的行情、订单、成交接口都以 pair 或 id 为键返回对象，结果需要按交易所返回顺序输出
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// Keys 按出现顺序返回所有键
func (m *OrderedMap[V]) Keys() []string {
	return m.keys
}

// Get 按键取值
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len 键的个数
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// UnmarshalJSON 逐个 token 读取对象，记录键顺序；null 与空数组 [] 视为空对象
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.values = make(map[string]V)

	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	dec := stdjson.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(stdjson.Delim)
	if !ok {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	switch delim {
	case '[':
		// 交易所用 [] 表示空结果
		end, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := end.(stdjson.Delim); !ok || d != ']' {
			return fmt.Errorf("expected JSON object or empty array, got non-empty array")
		}
		return nil
	case '{':
	default:
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		var raw stdjson.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("read value of %q: %w", key, err)
		}
		var v V
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode value of %q: %w", key, err)
		}

		if _, dup := m.values[key]; !dup {
			m.keys = append(m.keys, key)
		}
		m.values[key] = v
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
