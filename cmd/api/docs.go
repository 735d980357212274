package main

// @title           OpenClaw POS API
// @version         0.3.0
// @description     API versionada para operações de varejo: hierarquia organizacional, vendas, estoque, caixa, compras e sincronização offline.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey WriteKey
// @in header
// @name x-api-key
// @description Chave compartilhada exigida em requisições de escrita
