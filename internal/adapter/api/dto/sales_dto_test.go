package dto

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSalesReturnLineRestockDefaultsToTrue(t *testing.T) {
	qty := decimal.RequireFromString("2")
	req := SalesReturnLineRequest{ID: "l1", SalesReturnID: "r1", SkuCode: "SKU-1", Quantity: &qty}

	if !req.Restock() {
		t.Fatal("restock_to_inventory omitido deve valer true")
	}

	off := false
	req.RestockToInventory = &off
	if req.Restock() {
		t.Fatal("restock_to_inventory=false deve ser respeitado")
	}
}

func TestSalesReceiptDefaults(t *testing.T) {
	total := decimal.RequireFromString("99.90")
	req := SalesReceiptRequest{
		ID:           "rc1",
		ReceiptNo:    "R-001",
		BranchID:     "b1",
		TillID:       "t1",
		BusinessDate: "2026-08-31",
		TotalAmount:  &total,
	}

	r := req.ToEntity()

	if !r.SubtotalAmount.IsZero() || !r.TaxAmount.IsZero() || !r.DiscountAmount.IsZero() {
		t.Fatal("valores omitidos devem valer zero")
	}
	if !r.TotalAmount.Equal(total) {
		t.Fatalf("total esperado %s, obtido %s", total, r.TotalAmount)
	}
}

func TestSalesReturnStatusDefault(t *testing.T) {
	req := SalesReturnRequest{ID: "r1", BranchID: "b1", BusinessDate: "2026-08-31"}

	if got := req.ToEntity().ReturnStatus; got != "created" {
		t.Fatalf("status default esperado created, obtido %s", got)
	}
}
