package org

import (
	"errors"
	"time"
)

var (
	ErrEmptyID   = errors.New("id não pode ser vazio")
	ErrEmptyCode = errors.New("código não pode ser vazio")
)

// UnitType representa o tipo de unidade organizacional
type UnitType string

const (
	UnitTypeCountry UnitType = "country"
	UnitTypeRegion  UnitType = "region"
	UnitTypeBranch  UnitType = "branch"
	UnitTypeTill    UnitType = "till"
)

// OrgUnit representa um nó da hierarquia organizacional.
// A árvore é formada via parent_id; não há verificação de ciclos.
type OrgUnit struct {
	ID           string    `json:"id"`
	ParentID     *string   `json:"parent_id"`
	UnitType     string    `json:"unit_type"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	CountryCode  *string   `json:"country_code"`
	CurrencyCode *string   `json:"currency_code"`
	IsActive     int       `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Employee representa um funcionário vinculado a uma filial
type Employee struct {
	ID             string    `json:"id"`
	EmployeeCode   string    `json:"employee_code"`
	FullName       string    `json:"full_name"`
	EmploymentType string    `json:"employment_type"`
	CountryCode    string    `json:"country_code"`
	LegalEntityID  *string   `json:"legal_entity_id"`
	BranchID       *string   `json:"branch_id"`
	IsActive       int       `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Customer representa um cliente do varejo
type Customer struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	CountryCode *string   `json:"country_code"`
	IsActive    int       `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
