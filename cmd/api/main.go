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

	"github.com/jhoicas/registro-api/internal/application/auth"
	"github.com/jhoicas/registro-api/internal/application/mutation"
	"github.com/jhoicas/registro-api/internal/application/query"
	"github.com/jhoicas/registro-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/registro-api/internal/infrastructure/pdf"
	"github.com/jhoicas/registro-api/internal/infrastructure/postgres"
	"github.com/jhoicas/registro-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/registro-api/internal/interfaces/http"
	"github.com/jhoicas/registro-api/pkg/config"
	"github.com/jhoicas/registro-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)

	// Caché de vistas: Redis si está configurado, en memoria si no.
	var viewCache mutation.ViewCache
	if cfg.Redis.Host != "" {
		redisCache, err := cache.NewRedisViewCache(cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisCache.Close()
		viewCache = redisCache
	} else {
		log.Info().Msg("Redis no configurado, usando caché de vistas en memoria")
		viewCache = cache.NewMemoryViewCache()
	}

	// Almacenamiento de imágenes de cliente: disco local o S3.
	var imageStore mutation.ImageStore
	if cfg.Storage.Driver == "s3" {
		s3Store, err := storage.NewS3ImageStore(cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("configuración de S3")
		}
		imageStore = s3Store
	} else {
		imageStore = storage.NewLocalImageStore(cfg.Storage.PublicDir, cfg.Storage.BaseURL)
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	authMut := mutation.NewAuthMutations(authUC)
	invoiceMut := mutation.NewInvoiceMutations(invoiceRepo, viewCache)
	customerMut := mutation.NewCustomerMutations(customerRepo, imageStore, viewCache)

	pdfGenerator := infrapdf.NewReceiptGenerator()
	listUC := query.NewListUseCase(
		invoiceRepo, customerRepo, viewCache, pdfGenerator,
		time.Duration(cfg.Redis.TTLMin)*time.Minute,
	)

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
		Title:    "Registro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		AuthMut:     authMut,
		InvoiceMut:  invoiceMut,
		CustomerMut: customerMut,
		ListUC:      listUC,
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

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
