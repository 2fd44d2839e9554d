package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// HeaderIdempotencyKey header que el cliente envía en mutaciones reintentables.
const HeaderIdempotencyKey = "Idempotency-Key"

// Idempotency hace seguras de reintentar las mutaciones que llegan con
// Idempotency-Key: la primera ejecución reclama la clave, corre el handler y
// guarda la respuesta; los reintentos reciben esa respuesta tal cual, sin
// volver a ejecutar. Sin header el request pasa directo. Debe ir después de
// AuthMiddleware: la clave se scopea al tenant.
func Idempotency(repo repository.IdempotencyKeyRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(HeaderIdempotencyKey)
		if key == "" {
			return c.Next()
		}
		tenantID := GetTenantID(c)

		claim := &entity.IdempotencyKey{
			TenantID:  tenantID,
			Key:       key,
			Method:    c.Method(),
			Path:      c.Path(),
			CreatedAt: time.Now(),
		}
		if err := repo.Create(claim); err != nil {
			if !errors.Is(err, domain.ErrDuplicate) {
				return fail(c, err)
			}
			stored, err := repo.Get(tenantID, key)
			if err != nil {
				return fail(c, err)
			}
			if stored == nil || stored.InProgress() {
				// El otro reintento con la misma clave todavía está corriendo.
				return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
					Code:    "DUPLICATE",
					Message: "la operación con esta clave aún está en curso",
				})
			}
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Status(stored.StatusCode).Send(stored.Body)
		}

		if err := c.Next(); err != nil {
			_ = repo.Delete(tenantID, key)
			return err
		}
		status := c.Response().StatusCode()
		if status < 200 || status >= 300 {
			// Solo se memoriza el éxito: un fallo debe poder reintentarse.
			_ = repo.Delete(tenantID, key)
			return nil
		}
		body := append([]byte(nil), c.Response().Body()...)
		return repo.SaveResponse(tenantID, key, status, body)
	}
}
