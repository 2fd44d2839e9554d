package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/stock"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// StockHandler maneja movimientos del ledger y consultas de stock (protegido).
type StockHandler struct {
	ledger *stock.LedgerUseCase
	query  *stock.QueryUseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(ledger *stock.LedgerUseCase, query *stock.QueryUseCase) *StockHandler {
	return &StockHandler{ledger: ledger, query: query}
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "inventory_item_id, to_location_id, qty"
// @Success      201   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/in [post]
func (h *StockHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	mov, err := h.ledger.RegisterIn(c.Context(), GetActor(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// StockOut godoc
// @Summary      Registrar salida de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOutRequest  true  "inventory_item_id, from_location_id, qty"
// @Success      201   {object}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/out [post]
func (h *StockHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	mov, err := h.ledger.RegisterOut(c.Context(), GetActor(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// StockTransfer godoc
// @Summary      Traslado directo entre ubicaciones
// @Description  Mueve stock entre dos ubicaciones en un solo asiento, sin flujo de aprobación.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockTransferBody  true  "inventory_item_id, from_location_id, to_location_id, qty"
// @Success      201   {object}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/transfer [post]
func (h *StockHandler) StockTransfer(c *fiber.Ctx) error {
	var in dto.StockTransferBody
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	mov, err := h.ledger.RegisterTransfer(c.Context(), GetActor(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// ListMovements godoc
// @Summary      Listar movimientos de un ítem
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        inventory_item_id  query  string  true   "ID del ítem"
// @Param        page               query  int     false  "Página (default 1)"
// @Param        per_page           query  int     false  "Tamaño de página (default 20, max 100)"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	itemID := c.Query("inventory_item_id")
	out, err := h.query.ListMovements(c.Context(), GetTenantID(c), itemID, page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetItemStock godoc
// @Summary      Stock de un ítem por ubicación
// @Description  Total del ítem y desglose por ubicación; las ubicaciones en cero se omiten.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.StockSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/stock [get]
func (h *StockHandler) GetItemStock(c *fiber.Ctx) error {
	out, err := h.query.GetStock(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// MovementReport godoc
// @Summary      Kárdex PDF de un ítem
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        inventory_item_id  query  string  true  "ID del ítem"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/movements/report [get]
func (h *StockHandler) MovementReport(c *fiber.Ctx) error {
	itemID := c.Query("inventory_item_id")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventory_item_id es requerido"})
	}
	pdfBytes, err := h.query.MovementReportPDF(c.Context(), GetTenantID(c), itemID)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="kardex-%s.pdf"`, itemID))
	return c.Send(pdfBytes)
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:              m.ID,
		InventoryItemID: m.ItemID,
		Type:            m.Type,
		Qty:             m.Qty,
		FromLocationID:  m.FromLocationID,
		ToLocationID:    m.ToLocationID,
		Reference:       m.Reference,
		Note:            m.Note,
		UserID:          m.UserID,
		CreatedAt:       m.CreatedAt,
	}
}
