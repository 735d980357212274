package commerce

import "context"

// Repository define as operações de persistência de canais, pedidos e expedições
type Repository interface {
	CreateChannel(ctx context.Context, c *Channel) error
	ListChannels(ctx context.Context) ([]Channel, error)

	CreateChannelAccount(ctx context.Context, a *ChannelAccount) error
	ListChannelAccounts(ctx context.Context) ([]ChannelAccount, error)

	CreateOrder(ctx context.Context, o *Order) error
	ListOrders(ctx context.Context) ([]Order, error)

	// IngestOrder insere o pedido se ausente (idempotente por chave primária)
	IngestOrder(ctx context.Context, o *Order) error

	CreateShipment(ctx context.Context, s *Shipment) error
	ListShipments(ctx context.Context) ([]Shipment, error)
}
