package dto

import (
	"github.com/openclaw/openclaw-pos/internal/domain/org"
)

// OrgUnitRequest representa a requisição de unidade organizacional
type OrgUnitRequest struct {
	ID           string  `json:"id" validate:"required"`
	ParentID     *string `json:"parent_id"`
	UnitType     string  `json:"unit_type" validate:"required"`
	Code         string  `json:"code" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	CountryCode  *string `json:"country_code"`
	CurrencyCode *string `json:"currency_code"`
	IsActive     *int    `json:"is_active"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *OrgUnitRequest) ToEntity() *org.OrgUnit {
	return &org.OrgUnit{
		ID:           r.ID,
		ParentID:     r.ParentID,
		UnitType:     r.UnitType,
		Code:         r.Code,
		Name:         r.Name,
		CountryCode:  r.CountryCode,
		CurrencyCode: r.CurrencyCode,
		IsActive:     defaultActive(r.IsActive),
	}
}

// EmployeeRequest representa a requisição de funcionário
type EmployeeRequest struct {
	ID             string  `json:"id" validate:"required"`
	EmployeeCode   string  `json:"employee_code" validate:"required"`
	FullName       string  `json:"full_name" validate:"required"`
	EmploymentType string  `json:"employment_type" validate:"required"`
	CountryCode    string  `json:"country_code" validate:"required"`
	LegalEntityID  *string `json:"legal_entity_id"`
	BranchID       *string `json:"branch_id"`
	IsActive       *int    `json:"is_active"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *EmployeeRequest) ToEntity() *org.Employee {
	return &org.Employee{
		ID:             r.ID,
		EmployeeCode:   r.EmployeeCode,
		FullName:       r.FullName,
		EmploymentType: r.EmploymentType,
		CountryCode:    r.CountryCode,
		LegalEntityID:  r.LegalEntityID,
		BranchID:       r.BranchID,
		IsActive:       defaultActive(r.IsActive),
	}
}

// CustomerRequest representa a requisição de cliente
type CustomerRequest struct {
	ID          string  `json:"id" validate:"required"`
	DisplayName string  `json:"display_name" validate:"required"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	CountryCode *string `json:"country_code"`
	IsActive    *int    `json:"is_active"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *CustomerRequest) ToEntity() *org.Customer {
	return &org.Customer{
		ID:          r.ID,
		DisplayName: r.DisplayName,
		Email:       r.Email,
		Phone:       r.Phone,
		CountryCode: r.CountryCode,
		IsActive:    defaultActive(r.IsActive),
	}
}

// defaultActive aplica o default is_active=1 quando o campo é omitido
func defaultActive(v *int) int {
	if v == nil {
		return 1
	}
	return *v
}
