package dto

import (
	"encoding/json"
	"testing"
)

func TestWebhookPayloadToOrderShopify(t *testing.T) {
	var payload WebhookOrderPayload
	body := `{"id": 450789469, "currency": "BRL", "financial_status": "paid", "total_price": "409.94"}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("payload de teste inválido: %v", err)
	}

	o := payload.ToOrder("shopify")

	if o.ID != "shopify-450789469" {
		t.Fatalf("id esperado shopify-450789469, obtido %s", o.ID)
	}
	if o.OrderCode != "SHOPIFY-450789469" {
		t.Fatalf("order_code esperado SHOPIFY-450789469, obtido %s", o.OrderCode)
	}
	if o.CurrencyCode != "BRL" {
		t.Fatalf("moeda esperada BRL, obtida %s", o.CurrencyCode)
	}
	if o.OrderStatus != "paid" {
		t.Fatalf("status esperado paid, obtido %s", o.OrderStatus)
	}
	if o.TotalAmount.String() != "409.94" {
		t.Fatalf("total esperado 409.94, obtido %s", o.TotalAmount.String())
	}
}

func TestWebhookPayloadToOrderFallbacks(t *testing.T) {
	payload := WebhookOrderPayload{"order_id": "AMZ-001"}

	o := payload.ToOrder("amazon")

	if o.ID != "amazon-AMZ-001" {
		t.Fatalf("order_id deve servir de fallback para o id externo: %s", o.ID)
	}
	if o.CurrencyCode != "USD" {
		t.Fatalf("moeda default esperada USD, obtida %s", o.CurrencyCode)
	}
	if o.OrderStatus != "received" {
		t.Fatalf("status default esperado received, obtido %s", o.OrderStatus)
	}
	if !o.TotalAmount.IsZero() {
		t.Fatalf("total default esperado 0, obtido %s", o.TotalAmount.String())
	}
}

func TestWebhookPayloadToOrderGeneratesIDWhenAbsent(t *testing.T) {
	payload := WebhookOrderPayload{}

	o := payload.ToOrder("shopify")

	if o.ID == "shopify-" || len(o.ID) <= len("shopify-") {
		t.Fatalf("sem id no payload deve gerar um id externo: %s", o.ID)
	}
}

func TestWebhookPayloadStatusFromOrderStatus(t *testing.T) {
	payload := WebhookOrderPayload{"id": "9", "order_status": "shipped"}

	o := payload.ToOrder("amazon")

	if o.OrderStatus != "shipped" {
		t.Fatalf("order_status deve servir de fallback para o status: %s", o.OrderStatus)
	}
}
