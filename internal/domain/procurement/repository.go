package procurement

import "context"

// Repository define as operações de persistência de compras e recebimentos
type Repository interface {
	CreateSupplier(ctx context.Context, s *Supplier) error
	ListSuppliers(ctx context.Context) ([]Supplier, error)

	CreatePurchaseOrder(ctx context.Context, o *PurchaseOrder) error
	ListPurchaseOrders(ctx context.Context) ([]PurchaseOrder, error)

	CreatePurchaseOrderLine(ctx context.Context, l *PurchaseOrderLine) error
	ListPurchaseOrderLines(ctx context.Context) ([]PurchaseOrderLine, error)

	CreateGoodsReceipt(ctx context.Context, g *GoodsReceipt) error
	ListGoodsReceipts(ctx context.Context) ([]GoodsReceipt, error)

	// FindGoodsReceiptByID retorna ErrGoodsReceiptNotFound quando ausente
	FindGoodsReceiptByID(ctx context.Context, id string) (*GoodsReceipt, error)

	// PostGoodsReceiptLines lança cada linha em transação própria: insere a
	// linha, soma accepted_qty ao saldo do item e ao received_qty da linha do
	// pedido. Depois de todas as linhas, o status do pedido é recalculado em
	// um passo separado, de melhor esforço.
	PostGoodsReceiptLines(ctx context.Context, receipt *GoodsReceipt, lines []*GoodsReceiptLine) error
	ListGoodsReceiptLines(ctx context.Context) ([]GoodsReceiptLine, error)
}
