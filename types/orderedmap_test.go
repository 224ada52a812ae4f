package types

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestOrderedMap_KeepsKeyOrder(t *testing.T) {
	var m OrderedMap[int]
	if err := json.Unmarshal([]byte(`{"z": 1, "a": 2, "m": 3}`), &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	keys := m.Keys()
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "m" {
		t.Fatalf("Keys()=%v, want [z a m]", keys)
	}
	if v, ok := m.Get("a"); !ok || v != 2 {
		t.Fatalf("Get(a)=%d,%v", v, ok)
	}
}

func TestOrderedMap_EmptyForms(t *testing.T) {
	for _, in := range []string{`null`, `[]`, `{}`, ` [ ] `, "[\n]", "[\r\n\t]"} {
		var m OrderedMap[int]
		if err := m.UnmarshalJSON([]byte(in)); err != nil {
			t.Fatalf("UnmarshalJSON(%s): %v", in, err)
		}
		if m.Len() != 0 {
			t.Fatalf("Len()=%d for %s", m.Len(), in)
		}
	}
}

func TestOrderedMap_Nested(t *testing.T) {
	type wrapper struct {
		Pairs OrderedMap[struct {
			Fee ExDecimal `json:"fee"`
		}] `json:"pairs"`
	}

	var w wrapper
	data := `{"pairs": {"eth_btc": {"fee": "0.1"}, "ae_eth": {"fee": null}}}`
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if keys := w.Pairs.Keys(); len(keys) != 2 || keys[0] != "eth_btc" {
		t.Fatalf("Keys()=%v", keys)
	}
	v, _ := w.Pairs.Get("ae_eth")
	if !v.Fee.IsZero() {
		t.Fatalf("fee=%s, want 0", v.Fee)
	}
}

func TestOrderedMap_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	var m OrderedMap[int]
	if err := json.Unmarshal([]byte(`{"a": 1, "b": 2, "a": 3}`), &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if keys := m.Keys(); len(keys) != 2 || keys[0] != "a" {
		t.Fatalf("Keys()=%v", keys)
	}
	if v, _ := m.Get("a"); v != 3 {
		t.Fatalf("Get(a)=%d, want 3", v)
	}
}

func TestOrderedMap_RejectsNonObject(t *testing.T) {
	var m OrderedMap[int]
	if err := m.UnmarshalJSON([]byte(`[1, 2]`)); err == nil {
		t.Fatal("expected error for array")
	}
}

func TestExDecimal_Unmarshal(t *testing.T) {
	tests := map[string]string{
		`0.0702`:   "0.0702",
		`"0.0702"`: "0.0702",
		`null`:     "0",
		`""`:       "0",
	}
	for in, want := range tests {
		var d ExDecimal
		if err := d.UnmarshalJSON([]byte(in)); err != nil {
			t.Fatalf("UnmarshalJSON(%s): %v", in, err)
		}
		if d.String() != want {
			t.Errorf("UnmarshalJSON(%s)=%s, want %s", in, d.String(), want)
		}
	}
}
