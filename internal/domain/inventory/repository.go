package inventory

import "context"

// Repository define as operações de persistência de estoque
type Repository interface {
	CreateItem(ctx context.Context, i *Item) error
	ListItems(ctx context.Context) ([]Item, error)

	// PostMovement insere o movimento e aplica o delta ao saldo do item
	// correspondente (sku_code, branch_id) na mesma transação. A ausência de
	// item correspondente não é erro: o update afeta zero linhas.
	PostMovement(ctx context.Context, m *Movement) error
	ListMovements(ctx context.Context) ([]Movement, error)
}
