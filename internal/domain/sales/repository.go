package sales

import "context"

// Repository define as operações de persistência de vendas e devoluções
type Repository interface {
	// PostReceipt insere o cupom e o registro de outbox na mesma transação
	PostReceipt(ctx context.Context, r *Receipt) error
	ListReceipts(ctx context.Context) ([]Receipt, error)

	CreateReceiptLine(ctx context.Context, l *ReceiptLine) error
	ListReceiptLines(ctx context.Context) ([]ReceiptLine, error)

	CreateReceiptPayment(ctx context.Context, p *ReceiptPayment) error
	ListReceiptPayments(ctx context.Context) ([]ReceiptPayment, error)

	CreateReturn(ctx context.Context, r *Return) error
	ListReturns(ctx context.Context) ([]Return, error)

	// FindReturnByID retorna ErrReturnNotFound quando a devolução não existe
	FindReturnByID(ctx context.Context, id string) (*Return, error)

	// PostReturnLine insere a linha e, quando restock for verdadeiro, lança o
	// movimento de reabastecimento e aplica o delta ao saldo, tudo em uma
	// única transação. branchID vem da devolução pai, buscada antes.
	PostReturnLine(ctx context.Context, l *ReturnLine, restock bool, branchID string) error
	ListReturnLines(ctx context.Context) ([]ReturnLine, error)

	CreateRefund(ctx context.Context, r *Refund) error
	ListRefunds(ctx context.Context) ([]Refund, error)
}
