package routes

import (
	"context"

	_ "compras_xpto/docs"
	"compras_xpto/internal/adapter/http/handlers"
	"compras_xpto/internal/adapter/persistence/repository"
	"compras_xpto/internal/domain/analytics"
	"compras_xpto/internal/infrastructure/clock"
	"compras_xpto/internal/infrastructure/config"
	"compras_xpto/internal/infrastructure/database"
	"compras_xpto/internal/infrastructure/notifications"
	"compras_xpto/internal/usecase"
	"compras_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router needs.
type Handlers struct {
	Requisicao *handlers.RequisicaoHandler
	Analytics  *handlers.AnalyticsHandler
}

// Run will start the server
func Run(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h, refresher := buildHandlers(cfg)
	go refresher.Run(ctx)

	router := NewRouter(h)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to startup the application")
	}
}

// NewRouter registers middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRequisicaoRoutes(v1, h.Requisicao)
	addAnalyticsRoutes(v1, h.Analytics)
	return router
}

func buildHandlers(cfg config.Config) (Handlers, *usecase.AnalyticsRefresher) {
	ddb := database.ConnectDynamoDB(cfg)

	requisicaoRepo := repository.NewRequisicaoDynamoRepository(ddb, cfg.RequisicoesTable, cfg.ValorHistoricoTable)
	historicoRepo := repository.NewValorHistoricoDynamoRepository(ddb, cfg.ValorHistoricoTable)

	var notifier interfaces.INotifier
	if cfg.RedisAddr != "" {
		client := notifications.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		notifier = notifications.NewRedisNotifier(client, cfg.NotifyChannel)
		log.WithFields(log.Fields{"addr": cfg.RedisAddr, "channel": cfg.NotifyChannel}).Info("[routes] status notifications enabled")
	} else {
		log.Warn("[routes] REDIS_ADDR not set; status notifications disabled")
	}

	clk := clock.SystemClock{}
	requisicaoUseCase := usecase.NewRequisicaoUseCase(requisicaoRepo, historicoRepo, notifier, clk)
	analyticsUseCase := usecase.NewAnalyticsUseCase(requisicaoRepo, clk)

	refresher := usecase.NewAnalyticsRefresher(
		analyticsUseCase,
		analytics.Filters{},
		analytics.ParsePeriod(cfg.AnalyticsPeriod),
		cfg.AnalyticsRefreshInterval,
	)

	return Handlers{
		Requisicao: handlers.NewRequisicaoHandler(requisicaoUseCase),
		Analytics:  handlers.NewAnalyticsHandler(analyticsUseCase, refresher),
	}, refresher
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("path", c.Request.URL.Path).Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
