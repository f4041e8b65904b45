package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/movement"
	"github.com/jhoicas/Gestion-api/internal/application/schedule"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/application/wallet"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC        *usecase.CompanyUseCase
	ChamberUC        *usecase.ChamberUseCase
	ItemUC           *usecase.ItemUseCase
	RegisterMovement *movement.RegisterMovementUseCase
	MovementRepo     repository.MovementRepository
	ScheduleUC       *schedule.UseCase
	WalletUC         *wallet.UseCase
	AuthUC           *auth.AuthUseCase
	Modules          *usecase.ModuleService
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (alta y consulta públicas)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Modules)
	companies := api.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Agenda pública: clientes finales consultan disponibilidad y reservan
	// sin token, con el tenant en el path.
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)
	public := api.Group("/public/companies/:companyID")
	public.Get("/available-dates", scheduleHandler.AvailableDates)
	public.Get("/capacity", scheduleHandler.RemainingCapacity)
	public.Post("/schedules", scheduleHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Empresa del token (solo admin toca configuración y módulos)
	company := protected.Group("/company")
	company.Put("/", RequireRole(entity.RoleAdmin), companyHandler.Update)
	company.Put("/schedule-settings", RequireRole(entity.RoleAdmin), companyHandler.UpdateScheduleSettings)
	company.Post("/modules", RequireRole(entity.RoleAdmin), companyHandler.ActivateModule)

	// Agenda del personal (módulo scheduling)
	schedules := protected.Group("/schedules", RequireModule(entity.ModuleScheduling, deps.Modules))
	schedules.Get("/", scheduleHandler.ListByDay)
	schedules.Get("/report", scheduleHandler.DayReportPDF)
	schedules.Put("/:id/status", scheduleHandler.UpdateStatus)

	// Inventario (módulo inventory)
	requireInventory := RequireModule(entity.ModuleInventory, deps.Modules)

	chambers := protected.Group("/chambers", requireInventory)
	chamberHandler := NewChamberHandler(deps.ChamberUC)
	chambers.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), chamberHandler.Create)
	chambers.Get("/", chamberHandler.List)
	chambers.Get("/:id", chamberHandler.GetByID)
	chambers.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), chamberHandler.Update)
	chambers.Delete("/:id", RequireRole(entity.RoleAdmin), chamberHandler.Delete)

	items := protected.Group("/items", requireInventory)
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/low-stock", itemHandler.LowStock)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), itemHandler.Update)
	items.Delete("/:id", RequireRole(entity.RoleAdmin), itemHandler.Delete)

	movements := protected.Group("/movements", requireInventory)
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementRepo)
	movements.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), movementHandler.Register)
	movements.Post("/entry-batch", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), movementHandler.EntryBatch)
	movements.Get("/", movementHandler.List)

	// Fidelidad (módulo wallet)
	walletGroup := protected.Group("/wallet", RequireModule(entity.ModuleWallet, deps.Modules))
	walletHandler := NewWalletHandler(deps.WalletUC)
	walletGroup.Post("/cards", walletHandler.CreateCard)
	walletGroup.Get("/cards", walletHandler.ListCards)
	walletGroup.Get("/cards/:id", walletHandler.GetCard)
	walletGroup.Post("/cards/:id/credit", walletHandler.Credit)
	walletGroup.Post("/cards/:id/debit", walletHandler.Debit)
	walletGroup.Get("/cards/:id/movements", walletHandler.Movements)
}
