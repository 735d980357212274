package apikey

import (
	"crypto/subtle"
	"os"
)

// HeaderName é o cabeçalho que transporta a chave de escrita
const HeaderName = "x-api-key"

// Config contém a chave compartilhada exigida em requisições de escrita
type Config struct {
	WriteKey string
}

// NewConfigFromEnv cria a configuração a partir da variável API_WRITE_KEY
func NewConfigFromEnv() Config {
	return Config{WriteKey: os.Getenv("API_WRITE_KEY")}
}

// Authorize verifica se o valor do cabeçalho confere com a chave configurada.
// Sem chave configurada, toda escrita é rejeitada (fail-closed).
func (c Config) Authorize(headerValue string) bool {
	if c.WriteKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(headerValue), []byte(c.WriteKey)) == 1
}
