package sales

import "testing"

func TestReceiptIdempotencyKey(t *testing.T) {
	r := &Receipt{ID: "rcpt-2024-0001"}

	if got := r.IdempotencyKey(); got != "sales-receipt-rcpt-2024-0001" {
		t.Fatalf("chave de idempotência inesperada: %s", got)
	}
}
