package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// TenantRepository define el puerto de persistencia para Tenant.
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	GetBySlug(slug string) (*entity.Tenant, error)
}
