package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/auth"
	"github.com/jhoicas/stockflow-api/internal/application/directory"
	"github.com/jhoicas/stockflow-api/internal/application/stock"
	"github.com/jhoicas/stockflow-api/internal/application/transfer"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	DirectoryUC     *directory.UseCase
	LedgerUC        *stock.LedgerUseCase
	QueryUC         *stock.QueryUseCase
	TransferUC      *transfer.UseCase
	IdempotencyRepo repository.IdempotencyKeyRepository
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	adminOnly := RequireRole(entity.RoleAdmin)

	// Items (protegido; crear es solo admin)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.DirectoryUC)
	stockHandler := NewStockHandler(deps.LedgerUC, deps.QueryUC)
	items.Post("/", adminOnly, itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Get("/:id/stock", stockHandler.GetItemStock)

	// Locations (protegido; crear es solo admin)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.DirectoryUC)
	locations.Post("/", adminOnly, locationHandler.Create)
	locations.Get("/", locationHandler.List)

	// Departments (protegido; crear es solo admin)
	departments := protected.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DirectoryUC)
	departments.Post("/", adminOnly, departmentHandler.Create)
	departments.Get("/", departmentHandler.List)
	departments.Get("/:id", departmentHandler.GetByID)

	// Inventory: ledger + flujo de transferencias (protegido). Las mutaciones
	// aceptan Idempotency-Key para que el reintento del SPA no duplique asientos.
	invGroup := protected.Group("/inventory")
	idem := Idempotency(deps.IdempotencyRepo)
	invGroup.Post("/stock/in", idem, stockHandler.StockIn)
	invGroup.Post("/stock/out", idem, stockHandler.StockOut)
	invGroup.Post("/stock/transfer", idem, stockHandler.StockTransfer)
	invGroup.Get("/stock/movements", stockHandler.ListMovements)
	invGroup.Get("/stock/movements/report", stockHandler.MovementReport)

	transferHandler := NewTransferHandler(deps.TransferUC)
	invGroup.Post("/stock-transfers", idem, transferHandler.Create)
	invGroup.Get("/stock-transfers", transferHandler.List)
	invGroup.Post("/stock-transfers/:id/approve", idem, transferHandler.Approve)
	invGroup.Post("/stock-transfers/:id/reject", idem, transferHandler.Reject)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.QueryUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
}
