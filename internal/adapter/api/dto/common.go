package dto

import "github.com/shopspring/decimal"

// defaultAmount aplica o default zero a valores monetários e quantidades
// omitidos no payload
func defaultAmount(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

// ListResponse é o envelope padrão das coleções
type ListResponse struct {
	OK    bool        `json:"ok"`
	Items interface{} `json:"items"`
}

// NewListResponse cria o envelope de listagem
func NewListResponse(items interface{}) ListResponse {
	return ListResponse{OK: true, Items: items}
}

// CreatedResponse é o envelope de criação bem-sucedida
type CreatedResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// NewCreatedResponse cria o envelope de criação
func NewCreatedResponse(id string) CreatedResponse {
	return CreatedResponse{OK: true, ID: id}
}

// ErrorResponse é o envelope de erro da API
type ErrorResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// NewErrorResponse cria o envelope de erro; detail é omitido quando vazio
func NewErrorResponse(message, detail string) ErrorResponse {
	return ErrorResponse{OK: false, Error: message, Detail: detail}
}

// WebhookResponse é o envelope de ingestão de webhook de conector
type WebhookResponse struct {
	OK            bool   `json:"ok"`
	Connector     string `json:"connector"`
	IngestedOrder string `json:"ingested_order"`
	Mode          string `json:"mode"`
}

// SeedResponse é o envelope da carga de demonstração
type SeedResponse struct {
	OK     bool `json:"ok"`
	Seeded bool `json:"seeded"`
}
