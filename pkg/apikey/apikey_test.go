package apikey

import "testing"

func TestAuthorize(t *testing.T) {
	cfg := Config{WriteKey: "secret-key"}

	if !cfg.Authorize("secret-key") {
		t.Fatal("chave correta deve ser aceita")
	}
	if cfg.Authorize("wrong-key") {
		t.Fatal("chave incorreta deve ser rejeitada")
	}
	if cfg.Authorize("") {
		t.Fatal("cabeçalho vazio deve ser rejeitado")
	}
}

func TestAuthorizeFailClosed(t *testing.T) {
	cfg := Config{}

	// Sem chave configurada, nenhuma escrita passa, nem com valor vazio
	if cfg.Authorize("") {
		t.Fatal("sem chave configurada, valor vazio não autoriza")
	}
	if cfg.Authorize("anything") {
		t.Fatal("sem chave configurada, nenhum valor autoriza")
	}
}
