package appconfig

import "time"

// Config representa uma entrada de configuração da aplicação.
// key_name é chave primária; a escrita tem semântica de upsert com
// last-writer-wins, sem verificação de concorrência otimista.
type Config struct {
	KeyName   string    `json:"key_name"`
	ValueJSON string    `json:"value_json"`
	Scope     string    `json:"scope"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
