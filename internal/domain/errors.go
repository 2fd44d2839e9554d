package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Errores del motor de stock y del flujo de transferencias.
	ErrInvalidMovement   = errors.New("movimiento de stock inválido")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidState      = errors.New("la solicitud ya fue resuelta")
	ErrInvalidLocation   = errors.New("ubicación destino inválida")
)
