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
	"github.com/jhoicas/Minimarket-api/internal/application/auth"
	"github.com/jhoicas/Minimarket-api/internal/application/usecase"
	"github.com/jhoicas/Minimarket-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Minimarket-api/internal/interfaces/http"
	"github.com/jhoicas/Minimarket-api/pkg/config"
	"github.com/jhoicas/Minimarket-api/pkg/logger"
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

	session := postgres.NewSession(pool)
	userRepo := postgres.NewUserRepository(session)
	productRepo := postgres.NewProductRepository(session)
	warehouseRepo := postgres.NewWarehouseRepository(session)
	inventoryRepo := postgres.NewInventoryRepository(session)
	supplierRepo := postgres.NewSupplierRepository(session)

	userUC := usecase.NewUserUseCase(userRepo, log)
	productUC := usecase.NewProductUseCase(productRepo, log)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, log)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, log)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, log)
	authUC := auth.NewAuthUseCase(userUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Sondeo de arranque: ninguna superficie se expone si el almacén no
	// responde a una lectura real.
	if !userUC.TestConnection() {
		log.Fatal().Msg("sondeo de conexión inicial falló")
	}
	log.Info().Msg("almacén de datos verificado")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Minimarket API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/health/db", func(c *fiber.Ctx) error {
		if !userUC.TestConnection() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:      userUC,
		ProductUC:   productUC,
		InventoryUC: inventoryUC,
		SupplierUC:  supplierUC,
		WarehouseUC: warehouseUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
