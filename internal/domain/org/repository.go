package org

import "context"

// Repository define as operações de persistência da hierarquia organizacional
type Repository interface {
	CreateOrgUnit(ctx context.Context, u *OrgUnit) error
	ListOrgUnits(ctx context.Context) ([]OrgUnit, error)

	CreateEmployee(ctx context.Context, e *Employee) error
	ListEmployees(ctx context.Context) ([]Employee, error)

	CreateCustomer(ctx context.Context, c *Customer) error
	ListCustomers(ctx context.Context) ([]Customer, error)
}
