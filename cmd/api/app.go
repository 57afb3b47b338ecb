package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hugohenrick/armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/armazem/internal/adapter/api/route"
	"github.com/hugohenrick/armazem/internal/adapter/notifier"
	"github.com/hugohenrick/armazem/internal/adapter/repository"
	"github.com/hugohenrick/armazem/internal/config"
	"github.com/hugohenrick/armazem/internal/domain/enderecamento"
	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
	"github.com/hugohenrick/armazem/internal/infrastructure/database"
	"github.com/hugohenrick/armazem/internal/service"
	"github.com/hugohenrick/armazem/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	redis  *redis.Client
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo. O banco e o Redis são
// opcionais e só são conectados quando configurados.
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{logger: log}
	checks := make(map[string]controller.Pinger)

	client := backend.NewClient(backend.Config{
		BaseURL:     cfg.BackendURL,
		Timeout:     cfg.BackendTimeout,
		MaxAttempts: cfg.BackendRetries,
		Backoff:     200 * time.Millisecond,
	}, log)
	checks["backend"] = client

	// Registro persistente de endereçamentos
	var ledger enderecamento.Repository
	if cfg.LedgerEnabled() {
		version, err := database.RunMigrations(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Info("migrações aplicadas", "version", version)

		db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		app.db = db
		ledger = repository.NewEnderecamentoRepository(db)
		checks["database"] = db
	}

	// Sinal de invalidação de cache
	var invalidator notifier.Invalidator = notifier.NewLogInvalidator(log)
	if cfg.RedisAddr != "" {
		rdb, err := notifier.Connect(ctx, notifier.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Channel:  cfg.RedisChannel,
		})
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("erro ao conectar ao redis: %w", err)
		}
		app.redis = rdb
		redisInvalidator := notifier.NewRedisInvalidator(rdb, cfg.RedisChannel, log)
		invalidator = redisInvalidator
		checks["redis"] = redisInvalidator
	}

	// Criar repositórios
	streetRepo := repository.NewStreetRepository(client)
	addressRepo := repository.NewAddressRepository(client)
	customerRepo := repository.NewCustomerRepository(client)
	takeUpRepo := repository.NewTakeUpRepository(client)
	packageRepo := repository.NewPackageRepository(client)
	expedicaoRepo := repository.NewExpedicaoRepository(client)

	// Criar serviços
	now := service.Clock(time.Now)
	streetService := service.NewStreetService(streetRepo, invalidator, log)
	addressService := service.NewAddressService(addressRepo, streetRepo, invalidator, log)
	customerService := service.NewCustomerService(customerRepo, invalidator, log)
	takeUpService := service.NewTakeUpService(takeUpRepo, packageRepo, customerRepo, invalidator, log, now)
	packageService := service.NewPackageService(packageRepo, takeUpRepo, invalidator, log)
	enderecamentoService := service.NewEnderecamentoService(packageRepo, addressRepo, takeUpRepo, ledger, invalidator, log, now)
	expedicaoService := service.NewExpedicaoService(expedicaoRepo, invalidator, log, now)
	dashboardService := service.NewDashboardService(customerRepo, takeUpRepo, packageRepo, addressRepo)

	// Configurar router com modo correto
	gin.SetMode(cfg.GinMode)
	app.router = route.NewRouter(route.Controllers{
		Health:         controller.NewHealthController(checks, log),
		Streets:        controller.NewStreetController(streetService, addressService, log),
		Addresses:      controller.NewAddressController(addressService, log),
		Customers:      controller.NewCustomerController(customerService, takeUpService, log),
		TakeUps:        controller.NewTakeUpController(takeUpService, log),
		Packages:       controller.NewPackageController(packageService, log),
		Enderecamentos: controller.NewEnderecamentoController(enderecamentoService, log),
		Expedicoes:     controller.NewExpedicaoController(expedicaoService, log),
		Dashboard:      controller.NewDashboardController(dashboardService, log),
	}, route.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Swagger:        cfg.SwaggerEnabled,
	}, log)

	return app, nil
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("erro ao fechar conexão com o redis", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}
