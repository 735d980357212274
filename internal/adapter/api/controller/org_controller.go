package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/dto"
	orgdomain "github.com/openclaw/openclaw-pos/internal/domain/org"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

// OrgController gerencia as requisições da hierarquia organizacional,
// funcionários e clientes
type OrgController struct {
	orgRepo orgdomain.Repository
	logger  logger.Logger
}

// NewOrgController cria uma nova instância de OrgController
func NewOrgController(orgRepo orgdomain.Repository, logger logger.Logger) *OrgController {
	return &OrgController{
		orgRepo: orgRepo,
		logger:  logger,
	}
}

// CreateOrgUnit cria uma unidade organizacional
// @Summary Criar unidade organizacional
// @Tags org-units
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param unit body dto.OrgUnitRequest true "Dados da unidade"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/org-units [post]
func (c *OrgController) CreateOrgUnit(ctx *gin.Context) {
	var req dto.OrgUnitRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.orgRepo.CreateOrgUnit(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListOrgUnits lista as unidades organizacionais
// @Summary Listar unidades organizacionais
// @Tags org-units
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/org-units [get]
func (c *OrgController) ListOrgUnits(ctx *gin.Context) {
	items, err := c.orgRepo.ListOrgUnits(ctx)
	respondList(ctx, items, err)
}

// CreateEmployee cria um funcionário
// @Summary Criar funcionário
// @Tags employees
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param employee body dto.EmployeeRequest true "Dados do funcionário"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/employees [post]
func (c *OrgController) CreateEmployee(ctx *gin.Context) {
	var req dto.EmployeeRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.orgRepo.CreateEmployee(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListEmployees lista os funcionários
// @Summary Listar funcionários
// @Tags employees
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/employees [get]
func (c *OrgController) ListEmployees(ctx *gin.Context) {
	items, err := c.orgRepo.ListEmployees(ctx)
	respondList(ctx, items, err)
}

// CreateCustomer cria um cliente
// @Summary Criar cliente
// @Tags customers
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/customers [post]
func (c *OrgController) CreateCustomer(ctx *gin.Context) {
	var req dto.CustomerRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.orgRepo.CreateCustomer(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListCustomers lista os clientes
// @Summary Listar clientes
// @Tags customers
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/customers [get]
func (c *OrgController) ListCustomers(ctx *gin.Context) {
	items, err := c.orgRepo.ListCustomers(ctx)
	respondList(ctx, items, err)
}
