package route

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
)

// RegisterOrgRoutes registra as rotas de hierarquia organizacional,
// funcionários e clientes
func RegisterOrgRoutes(r *gin.RouterGroup, orgController *controller.OrgController) {
	r.GET("/org-units", orgController.ListOrgUnits)
	r.POST("/org-units", orgController.CreateOrgUnit)

	r.GET("/employees", orgController.ListEmployees)
	r.POST("/employees", orgController.CreateEmployee)

	r.GET("/customers", orgController.ListCustomers)
	r.POST("/customers", orgController.CreateCustomer)
}
