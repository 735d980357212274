package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRestockMovement(t *testing.T) {
	qty := decimal.RequireFromString("-3")
	m := RestockMovement("mov-1", "SKU-1", "branch-1", "srl-1", qty)

	if m.MovementType != string(MovementTypeSaleReturn) {
		t.Fatalf("tipo esperado sale_return, obtido %s", m.MovementType)
	}
	if m.QuantityDelta.String() != "3" {
		t.Fatalf("delta deve ser positivo: esperado 3, obtido %s", m.QuantityDelta.String())
	}
	if m.ReferenceType == nil || *m.ReferenceType != "sales_return_line" {
		t.Fatalf("reference_type inesperado: %v", m.ReferenceType)
	}
	if m.ReferenceID == nil || *m.ReferenceID != "srl-1" {
		t.Fatalf("reference_id inesperado: %v", m.ReferenceID)
	}
}
