package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestGoodsReceiptLinesToEntities(t *testing.T) {
	received := decimal.RequireFromString("10")
	accepted := decimal.RequireFromString("9")
	explicit := decimal.RequireFromString("0.5")

	req := GoodsReceiptLinesRequest{
		GoodsReceiptID: "grn-1",
		Lines: []GoodsReceiptLineItem{
			{ID: "l1", PurchaseOrderLineID: "pol-1", SkuCode: "SKU-1", ReceivedQty: &received, AcceptedQty: &accepted},
			{ID: "l2", PurchaseOrderLineID: "pol-2", SkuCode: "SKU-2", ReceivedQty: &received, AcceptedQty: &accepted, RejectedQty: &explicit},
		},
	}

	lines := req.ToEntities()
	if len(lines) != 2 {
		t.Fatalf("esperadas 2 linhas, obtidas %d", len(lines))
	}

	if lines[0].GoodsReceiptID != "grn-1" {
		t.Fatalf("goods_receipt_id deve vir do cabeçalho: %s", lines[0].GoodsReceiptID)
	}
	if lines[0].RejectedQty.String() != "1" {
		t.Fatalf("rejected omitido deve valer recebido-aceito: %s", lines[0].RejectedQty.String())
	}
	if lines[1].RejectedQty.String() != "0.5" {
		t.Fatalf("rejected informado deve ser mantido: %s", lines[1].RejectedQty.String())
	}
}

func TestGoodsReceiptReceivedDateDefault(t *testing.T) {
	req := GoodsReceiptRequest{ID: "grn-1", PurchaseOrderID: "po-1", BranchID: "b1"}

	g := req.ToEntity()
	today := time.Now().UTC().Format("2006-01-02")
	if g.ReceivedDate != today {
		t.Fatalf("received_date omitido deve valer hoje (%s), obtido %s", today, g.ReceivedDate)
	}
}
