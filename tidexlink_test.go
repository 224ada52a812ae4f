package tidexlink

import (
	"errors"
	"testing"

	"github.com/lemconn/tidexlink/model"
	"github.com/lemconn/tidexlink/option"
)

func TestNewExchange(t *testing.T) {
	ex, err := NewExchange(option.WithAPIKey("key"), option.WithSecretKey("secret"))
	if err != nil {
		t.Fatalf("NewExchange: %v", err)
	}
	if ex.Name() != ExchangeTidex {
		t.Fatalf("Name() = %q, want %q", ex.Name(), ExchangeTidex)
	}
}

func TestNewExchange_InvalidOptions(t *testing.T) {
	ex, err := NewExchange(option.WithMarkets(&model.Market{}))
	if err == nil {
		t.Fatal("expected error")
	}
	if ex != nil {
		t.Fatalf("exchange = %v, want nil", ex)
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %T, want ValidationError", err)
	}
}
