package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/billing-pro/internal/application/auth"
	"github.com/tu-usuario/billing-pro/internal/application/billing"
	"github.com/tu-usuario/billing-pro/internal/application/logistics"
	"github.com/tu-usuario/billing-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/billing-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/billing-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/billing-pro/internal/infrastructure/rediscache"
	httpRouter "github.com/tu-usuario/billing-pro/internal/interfaces/http"
	"github.com/tu-usuario/billing-pro/pkg/config"
	"github.com/tu-usuario/billing-pro/pkg/logger"
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

	// Blacklist de tokens (logout). Sin REDIS_ADDR los tokens valen hasta expirar.
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Addr != "" {
		redisClient, err := rediscache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		blacklist = rediscache.NewTokenBlacklist(redisClient)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("blacklist de tokens habilitada")
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: logout sin revocación de tokens")
	}

	userRepo := postgres.NewUserRepository(pool)
	memRepo := postgres.NewMembershipRepository(pool)
	bizRepo := postgres.NewBusinessRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	noteRepo := postgres.NewDeliveryNoteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, blacklist, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	businessUC := usecase.NewBusinessUseCase(txRunner, bizRepo)
	memberUC := usecase.NewMemberUseCase(memRepo, userRepo, bizRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, bizRepo)
	searchUC := usecase.NewGlobalSearchUseCase(clientRepo, itemRepo, invoiceRepo, bizRepo)

	createInvoiceUC := billing.NewCreateInvoiceUseCase(txRunner, clientRepo, bizRepo, itemRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, clientRepo, bizRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceRepo, clientRepo, bizRepo, pdfGenerator)

	deliveryUC := logistics.NewDeliveryUseCase(txRunner, noteRepo, invoiceRepo, clientRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + httpRouter.HeaderBusinessID,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Billing Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		BusinessUC:    businessUC,
		MemberUC:      memberUC,
		ClientUC:      clientUC,
		ItemUC:        itemUC,
		SearchUC:      searchUC,
		CreateInvoice: createInvoiceUC,
		InvoiceUC:     invoiceUC,
		PDFUC:         pdfUC,
		DeliveryUC:    deliveryUC,
		Users:         userRepo,
		Blacklist:     blacklist,
		JWTSecret:     cfg.JWT.Secret,
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
