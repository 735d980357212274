package procurement

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRollupStatus(t *testing.T) {
	cases := []struct {
		name          string
		totalLines    int
		fullyReceived int
		anyReceived   int
		current       string
		expected      string
	}{
		{"todas as linhas recebidas", 3, 3, 3, "ordered", "received"},
		{"recebimento parcial", 3, 1, 2, "ordered", "partially_received"},
		{"nada recebido", 3, 0, 0, "ordered", "ordered"},
		{"pedido sem linhas", 0, 0, 0, "ordered", "ordered"},
		{"status corrente preservado", 2, 0, 0, "partially_received", "partially_received"},
	}

	for _, tc := range cases {
		got := RollupStatus(tc.totalLines, tc.fullyReceived, tc.anyReceived, tc.current)
		if got != tc.expected {
			t.Fatalf("%s: esperado %s, obtido %s", tc.name, tc.expected, got)
		}
	}
}

func TestDefaultRejectedQty(t *testing.T) {
	received := decimal.RequireFromString("10")
	accepted := decimal.RequireFromString("8")

	if got := DefaultRejectedQty(received, accepted, nil); got.String() != "2" {
		t.Fatalf("rejected omitido: esperado 2, obtido %s", got.String())
	}

	explicit := decimal.RequireFromString("1.5")
	if got := DefaultRejectedQty(received, accepted, &explicit); got.String() != "1.5" {
		t.Fatalf("rejected informado: esperado 1.5, obtido %s", got.String())
	}
}
