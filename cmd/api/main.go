package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Christopheryu29/store-management-api/internal/application/auth"
	"github.com/Christopheryu29/store-management-api/internal/application/inventory"
	"github.com/Christopheryu29/store-management-api/internal/application/pos"
	"github.com/Christopheryu29/store-management-api/internal/application/report"
	"github.com/Christopheryu29/store-management-api/internal/application/usecase"
	infrapdf "github.com/Christopheryu29/store-management-api/internal/infrastructure/pdf"
	"github.com/Christopheryu29/store-management-api/internal/infrastructure/postgres"
	infraredis "github.com/Christopheryu29/store-management-api/internal/infrastructure/redis"
	httpRouter "github.com/Christopheryu29/store-management-api/internal/interfaces/http"
	"github.com/Christopheryu29/store-management-api/pkg/config"
	"github.com/Christopheryu29/store-management-api/pkg/logger"
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

	redisClient, err := infraredis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	sessionRepo := infraredis.NewSessionStore(redisClient)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	storeUC := usecase.NewStoreUseCase(txRunner, storeRepo, userRepo)
	inventoryUC := inventory.NewUseCase(storeRepo, itemRepo)
	checkoutUC := inventory.NewCheckoutUseCase(txRunner)
	posUC := pos.NewUseCase(storeRepo, sessionRepo, time.Duration(cfg.Session.TTLMinutes)*time.Minute)

	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewSalesReportUseCase(storeRepo, saleRepo, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Store Management API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		StoreUC:     storeUC,
		InventoryUC: inventoryUC,
		CheckoutUC:  checkoutUC,
		POSUC:       posUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
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
