package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/transfer"
)

// TransferHandler maneja el flujo de solicitudes de transferencia entre
// departamentos (protegido).
type TransferHandler struct {
	uc *transfer.UseCase
}

// NewTransferHandler construye el handler de transferencias.
func NewTransferHandler(uc *transfer.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de transferencia
// @Description  Crea la solicitud en pending y debita la ubicación origen de inmediato.
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "inventory_item_id, from_location_id, to_department_id, qty"
// @Success      201   {object}  dto.TransferRequestResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock-transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	req, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transfer.ToResponse(req))
}

// List godoc
// @Summary      Listar solicitudes de transferencia
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "pending (default), approved o rejected"
// @Param        page      query  int     false  "Página (default 1)"
// @Param        per_page  query  int     false  "Tamaño de página (default 20, max 100)"
// @Success      200  {object}  dto.TransferRequestListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock-transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.Context(), GetActor(c), c.Query("status"), page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar solicitud de transferencia
// @Description  Acredita la ubicación elegida por el receptor y cierra la solicitud. Sobre una solicitud ya resuelta responde 409 sin tocar el ledger.
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la solicitud"
// @Param        body  body  dto.ApproveTransferRequest  true  "to_location_id"
// @Success      200   {object}  dto.TransferRequestResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock-transfers/{id}/approve [post]
func (h *TransferHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	req, err := h.uc.Approve(c.Context(), GetActor(c), c.Params("id"), in.ToLocationID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(transfer.ToResponse(req))
}

// Reject godoc
// @Summary      Rechazar solicitud de transferencia
// @Description  Reembolsa la cantidad completa a la ubicación origen y cierra la solicitud.
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.TransferRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock-transfers/{id}/reject [post]
func (h *TransferHandler) Reject(c *fiber.Ctx) error {
	req, err := h.uc.Reject(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(transfer.ToResponse(req))
}
