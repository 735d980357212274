package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/dto"
	"github.com/openclaw/openclaw-pos/pkg/validation"
)

// bindPayload decodifica e valida o corpo da requisição. Corpo não
// decodificável responde 400 Invalid JSON body; campos obrigatórios ausentes
// e enums inválidos respondem 400 com a mensagem do validador. Retorna false
// quando a resposta já foi escrita.
func bindPayload(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.IndentedJSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid JSON body", ""))
		return false
	}
	if err := validation.Payload(req); err != nil {
		ctx.IndentedJSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), ""))
		return false
	}
	return true
}

// respondCreated responde 201 com o id criado
func respondCreated(ctx *gin.Context, id string) {
	ctx.IndentedJSON(http.StatusCreated, dto.NewCreatedResponse(id))
}

// respondInsertError responde 400 com o erro bruto do banco em detail
func respondInsertError(ctx *gin.Context, err error) {
	ctx.IndentedJSON(http.StatusBadRequest, dto.NewErrorResponse("Insert failed", err.Error()))
}

// respondList responde a listagem ou o erro de consulta
func respondList(ctx *gin.Context, items interface{}, err error) {
	if err != nil {
		ctx.IndentedJSON(http.StatusInternalServerError, dto.NewErrorResponse("Query failed", err.Error()))
		return
	}
	ctx.IndentedJSON(http.StatusOK, dto.NewListResponse(items))
}
