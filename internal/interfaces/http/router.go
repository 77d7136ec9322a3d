package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storesage/internal/application/ports"
	"github.com/jhoicas/storesage/internal/application/usecase"
	"github.com/jhoicas/storesage/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	BorrowedUC  *usecase.BorrowedItemUseCase
	ReminderUC  *usecase.ReminderUseCase
	InitUC      *usecase.InitUseCase
	DashboardUC *usecase.DashboardUseCase
	ReportUC    *usecase.ReportUseCase
	Store       repository.Store
	ServiceName string
}

// NewRouterDeps arma todos los casos de uso sobre un mismo almacén.
func NewRouterDeps(store repository.Store, generator ports.ReorderReportGenerator, now usecase.Clock, serviceName string) RouterDeps {
	productUC := usecase.NewProductUseCase(store.Products(), now)
	borrowedUC := usecase.NewBorrowedItemUseCase(store.BorrowedItems(), now)
	reminderUC := usecase.NewReminderUseCase(store.Reminders(), now)
	return RouterDeps{
		ProductUC:   productUC,
		BorrowedUC:  borrowedUC,
		ReminderUC:  reminderUC,
		InitUC:      usecase.NewInitUseCase(productUC, borrowedUC, reminderUC),
		DashboardUC: usecase.NewDashboardUseCase(store, now),
		ReportUC:    usecase.NewReportUseCase(store.Products(), reminderUC, generator, now),
		Store:       store,
		ServiceName: serviceName,
	}
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", NewHealthHandler(deps.Store, deps.ServiceName).Check)

	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Borrowed items
	borrowed := api.Group("/borrowed")
	borrowedHandler := NewBorrowedItemHandler(deps.BorrowedUC)
	borrowed.Get("/", borrowedHandler.List)
	borrowed.Post("/", borrowedHandler.Create)
	borrowed.Get("/:id", borrowedHandler.GetByID)
	borrowed.Put("/:id/return", borrowedHandler.MarkReturned)

	// Reminders
	reminders := api.Group("/reminders")
	reminderHandler := NewReminderHandler(deps.ReminderUC)
	reminders.Get("/", reminderHandler.List)
	reminders.Post("/", reminderHandler.Create)
	reminders.Get("/:id", reminderHandler.GetByID)
	reminders.Delete("/:id", reminderHandler.Delete)

	// Importación inicial desde el espejo local
	api.Post("/init", NewInitHandler(deps.InitUC).Import)

	// Dashboard y reportes
	api.Get("/dashboard/summary", NewDashboardHandler(deps.DashboardUC).GetSummary)
	api.Get("/reports/reorder", NewReportHandler(deps.ReportUC).Reorder)
}
