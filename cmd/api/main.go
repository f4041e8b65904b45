package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/movement"
	"github.com/jhoicas/Gestion-api/internal/application/schedule"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/application/wallet"
	infrapdf "github.com/jhoicas/Gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	agendaRepo := postgres.NewAgendaRepository(pool)
	scheduleRepo := postgres.NewScheduleRepository(pool)
	chamberRepo := postgres.NewChamberRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	cardRepo := postgres.NewWalletCardRepository(pool)
	walletMovRepo := postgres.NewWalletMovementRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	scheduleTxRunner := postgres.NewScheduleTxRunner(pool)
	walletTxRunner := postgres.NewWalletTxRunner(pool)

	// PDF: reporte de agenda del día para el personal
	agendaPDF := infrapdf.NewMarotoAgendaGenerator()

	companyUC := usecase.NewCompanyUseCase(companyRepo, agendaRepo)
	chamberUC := usecase.NewChamberUseCase(chamberRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, chamberRepo)
	moduleSvc := usecase.NewModuleService(companyRepo)
	registerMovementUC := movement.NewRegisterMovementUseCase(txRunner, itemRepo, chamberRepo, userRepo)
	scheduleUC := schedule.NewUseCase(
		scheduleTxRunner, companyRepo, agendaRepo, scheduleRepo,
		agendaPDF, cfg.Agenda.ViewDays,
	)
	walletUC := wallet.NewUseCase(walletTxRunner, cardRepo, walletMovRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:        companyUC,
		ChamberUC:        chamberUC,
		ItemUC:           itemUC,
		RegisterMovement: registerMovementUC,
		MovementRepo:     movementRepo,
		ScheduleUC:       scheduleUC,
		WalletUC:         walletUC,
		AuthUC:           authUC,
		Modules:          moduleSvc,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
