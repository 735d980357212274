package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openclaw/openclaw-pos/internal/domain/inventory"
	"github.com/openclaw/openclaw-pos/internal/domain/sales"
)

func demoItemBalance(t *testing.T, repo *PostgresInventoryRepository) decimal.Decimal {
	t.Helper()
	items, err := repo.ListItems(context.Background())
	if err != nil {
		t.Fatalf("falha ao listar itens: %v", err)
	}
	for _, it := range items {
		if it.ID == "demo-item-01" {
			return it.QuantityOnHand
		}
	}
	t.Fatal("item demo-item-01 não encontrado após o seed")
	return decimal.Zero
}

func TestPostReturnLineRestocksSeededItem(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := NewPostgresSeedRepository(db).SeedDemoBranch(ctx); err != nil {
		t.Fatalf("seed falhou: %v", err)
	}

	salesRepo := NewPostgresSalesRepository(db)
	inventoryRepo := NewPostgresInventoryRepository(db)

	before := demoItemBalance(t, inventoryRepo)

	ret := &sales.Return{
		ID:           uuid.New().String(),
		BranchID:     "demo-branch-01",
		BusinessDate: time.Now().UTC().Format("2006-01-02"),
		ReturnStatus: "created",
	}
	if err := salesRepo.CreateReturn(ctx, ret); err != nil {
		t.Fatalf("falha ao criar devolução: %v", err)
	}

	line := &sales.ReturnLine{
		ID:            uuid.New().String(),
		SalesReturnID: ret.ID,
		SkuCode:       "SKU-DEMO-01",
		Quantity:      decimal.NewFromInt(2),
	}
	if err := salesRepo.PostReturnLine(ctx, line, true, ret.BranchID); err != nil {
		t.Fatalf("falha ao lançar linha de devolução: %v", err)
	}

	after := demoItemBalance(t, inventoryRepo)
	if !after.Sub(before).Equal(decimal.NewFromInt(2)) {
		t.Fatalf("saldo deveria subir 2 com o restock: antes %s, depois %s", before, after)
	}

	movements, err := inventoryRepo.ListMovements(ctx)
	if err != nil {
		t.Fatalf("falha ao listar movimentos: %v", err)
	}
	var found *inventory.Movement
	for i := range movements {
		if movements[i].ReferenceID != nil && *movements[i].ReferenceID == line.ID {
			found = &movements[i]
			break
		}
	}
	if found == nil {
		t.Fatal("movimento sintético da devolução não foi lançado no razão")
	}
	if found.MovementType != string(inventory.MovementTypeSaleReturn) {
		t.Fatalf("tipo de movimento esperado sale_return, obtido %s", found.MovementType)
	}
	if found.ReferenceType == nil || *found.ReferenceType != "sales_return_line" {
		t.Fatalf("reference_type esperado sales_return_line, obtido %v", found.ReferenceType)
	}
	if !found.QuantityDelta.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("delta esperado 2, obtido %s", found.QuantityDelta)
	}
}
