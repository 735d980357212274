package syncoutbox

import "time"

// EntryStatus representa o estado de propagação de um registro do outbox
type EntryStatus string

const (
	EntryStatusPending EntryStatus = "pending"
	EntryStatusSent    EntryStatus = "sent"
	EntryStatusFailed  EntryStatus = "failed"
)

// Entry é o registro write-ahead de uma mudança pendente de propagação para
// outro nó. retry_count e next_retry_at são preenchidos por um consumidor
// externo; este serviço apenas enfileira.
type Entry struct {
	ID             string     `json:"id"`
	EntityType     string     `json:"entity_type"`
	EntityID       string     `json:"entity_id"`
	OperationType  string     `json:"operation_type"`
	Payload        string     `json:"payload"`
	IdempotencyKey *string    `json:"idempotency_key"`
	Status         string     `json:"status"`
	RetryCount     int        `json:"retry_count"`
	NextRetryAt    *time.Time `json:"next_retry_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Conflict registra uma divergência local/remoto detectada na sincronização.
// Não há resolução automática: o registro fica para tratamento manual.
type Conflict struct {
	ID                 string     `json:"id"`
	EntityType         string     `json:"entity_type"`
	EntityID           string     `json:"entity_id"`
	LocalPayload       string     `json:"local_payload"`
	RemotePayload      string     `json:"remote_payload"`
	ResolutionStrategy string     `json:"resolution_strategy"`
	ResolvedAt         *time.Time `json:"resolved_at"`
	CreatedAt          time.Time  `json:"created_at"`
}
