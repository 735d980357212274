package dto

import (
	"github.com/openclaw/openclaw-pos/internal/domain/appconfig"
)

// AppConfigRequest representa a requisição de configuração da aplicação.
// A escrita é um upsert por key_name.
type AppConfigRequest struct {
	KeyName   string `json:"key_name" validate:"required"`
	ValueJSON string `json:"value_json" validate:"required"`
	Scope     string `json:"scope"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *AppConfigRequest) ToEntity() *appconfig.Config {
	scope := r.Scope
	if scope == "" {
		scope = "global"
	}
	return &appconfig.Config{
		KeyName:   r.KeyName,
		ValueJSON: r.ValueJSON,
		Scope:     scope,
	}
}
