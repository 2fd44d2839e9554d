package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmailAndTenant(email, tenantID string) (*entity.User, error)
	UpdatePassword(id, passwordHash string) error
}
