package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Christopheryu29/store-management-api/internal/application/auth"
	"github.com/Christopheryu29/store-management-api/internal/application/inventory"
	"github.com/Christopheryu29/store-management-api/internal/application/pos"
	"github.com/Christopheryu29/store-management-api/internal/application/report"
	"github.com/Christopheryu29/store-management-api/internal/application/usecase"
	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	StoreUC     *usecase.StoreUseCase
	InventoryUC *inventory.UseCase
	CheckoutUC  *inventory.CheckoutUseCase
	POSUC       *pos.UseCase
	ReportUC    *report.SalesReportUseCase
	JWTSecret   string
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

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.AuthUC)
	users.Post("/role", userHandler.AssignRole)
	users.Get("/me", userHandler.Me)

	// Stores (protegido; crear solo para dueños)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", RequireRole(entity.RoleOwner), storeHandler.Create)
	stores.Get("/owned", RequireRole(entity.RoleOwner), storeHandler.ListOwned)
	stores.Get("/assigned", RequireRole(entity.RoleCashier), storeHandler.ListAssigned)
	stores.Get("/:id", storeHandler.GetByID)

	// Inventario por tienda (protegido; escritura solo para dueños)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	stores.Get("/:id/items", inventoryHandler.ListItems)
	stores.Post("/:id/items", RequireRole(entity.RoleOwner), inventoryHandler.AddItem)
	stores.Put("/:id/items/:itemId", RequireRole(entity.RoleOwner), inventoryHandler.UpdateItem)
	stores.Delete("/:id/items/:itemId", RequireRole(entity.RoleOwner), inventoryHandler.DeleteItem)

	// Reporte de ventas (protegido, solo dueños)
	reportHandler := NewReportHandler(deps.ReportUC)
	stores.Get("/:id/report", RequireRole(entity.RoleOwner), reportHandler.Download)

	// Punto de venta: login público, resto con sesión de caja
	posGroup := api.Group("/pos")
	posHandler := NewPOSHandler(deps.POSUC, deps.CheckoutUC)
	posGroup.Post("/login", posHandler.Login)

	session := posGroup.Group("/", StoreSessionMiddleware(deps.POSUC))
	session.Get("/store", posHandler.CurrentStore)
	session.Post("/checkout", posHandler.Checkout)
	session.Post("/logout", posHandler.Logout)
}
