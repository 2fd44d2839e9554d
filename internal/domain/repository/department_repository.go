package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// DepartmentRepository define el puerto de persistencia para Department.
// El núcleo de transferencias lo consume como directorio de solo lectura.
type DepartmentRepository interface {
	Create(department *entity.Department) error
	GetByID(id string) (*entity.Department, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Department, error)
}
