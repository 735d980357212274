package commerce

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestConnectorOrder(t *testing.T) {
	total := decimal.RequireFromString("149.90")
	o := ConnectorOrder("shopify", "987654", "USD", "paid", total)

	if o.ID != "shopify-987654" {
		t.Fatalf("id esperado shopify-987654, obtido %s", o.ID)
	}
	if o.OrderCode != "SHOPIFY-987654" {
		t.Fatalf("order_code esperado SHOPIFY-987654, obtido %s", o.OrderCode)
	}
	if o.SourceOrderID == nil || *o.SourceOrderID != "987654" {
		t.Fatalf("source_order_id esperado 987654, obtido %v", o.SourceOrderID)
	}
	if o.CurrencyCode != "USD" || o.OrderStatus != "paid" {
		t.Fatalf("moeda/status inesperados: %s %s", o.CurrencyCode, o.OrderStatus)
	}
	if !o.TotalAmount.Equal(total) {
		t.Fatalf("total esperado %s, obtido %s", total, o.TotalAmount)
	}
}

func TestConnectorOrderDeterministic(t *testing.T) {
	a := ConnectorOrder("amazon", "A1", "USD", "received", decimal.Zero)
	b := ConnectorOrder("amazon", "A1", "USD", "received", decimal.Zero)

	if a.ID != b.ID || a.OrderCode != b.OrderCode {
		t.Fatalf("pedido derivado deve ser determinístico por (conector, id externo)")
	}
}
