package dto

import (
	"github.com/openclaw/openclaw-pos/internal/domain/syncoutbox"
)

// SyncOutboxRequest representa a requisição de registro de outbox
type SyncOutboxRequest struct {
	ID             string  `json:"id" validate:"required"`
	EntityType     string  `json:"entity_type" validate:"required"`
	EntityID       string  `json:"entity_id" validate:"required"`
	OperationType  string  `json:"operation_type" validate:"required"`
	Payload        string  `json:"payload" validate:"required"`
	IdempotencyKey *string `json:"idempotency_key"`
	Status         string  `json:"status"`
}

// ToEntity converte a requisição em entidade; registros nascem em pending
func (r *SyncOutboxRequest) ToEntity() *syncoutbox.Entry {
	status := r.Status
	if status == "" {
		status = string(syncoutbox.EntryStatusPending)
	}
	return &syncoutbox.Entry{
		ID:             r.ID,
		EntityType:     r.EntityType,
		EntityID:       r.EntityID,
		OperationType:  r.OperationType,
		Payload:        r.Payload,
		IdempotencyKey: r.IdempotencyKey,
		Status:         status,
	}
}

// SyncConflictRequest representa a requisição de conflito de sincronização
type SyncConflictRequest struct {
	ID                 string `json:"id" validate:"required"`
	EntityType         string `json:"entity_type" validate:"required"`
	EntityID           string `json:"entity_id" validate:"required"`
	LocalPayload       string `json:"local_payload" validate:"required"`
	RemotePayload      string `json:"remote_payload" validate:"required"`
	ResolutionStrategy string `json:"resolution_strategy"`
}

// ToEntity converte a requisição em entidade; sem resolução automática, a
// estratégia default é manual
func (r *SyncConflictRequest) ToEntity() *syncoutbox.Conflict {
	strategy := r.ResolutionStrategy
	if strategy == "" {
		strategy = "manual"
	}
	return &syncoutbox.Conflict{
		ID:                 r.ID,
		EntityType:         r.EntityType,
		EntityID:           r.EntityID,
		LocalPayload:       r.LocalPayload,
		RemotePayload:      r.RemotePayload,
		ResolutionStrategy: strategy,
	}
}
