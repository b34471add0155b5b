package routes

import (
	"context"
	"fmt"
	"time"

	_ "homeservices_crm/docs" // generated by swag init
	"homeservices_crm/internal/adapter/http/handlers"
	"homeservices_crm/internal/adapter/persistence/repository"
	"homeservices_crm/internal/infrastructure/config"
	"homeservices_crm/internal/infrastructure/database"
	"homeservices_crm/internal/infrastructure/lock"
	"homeservices_crm/internal/infrastructure/logger"
	"homeservices_crm/internal/infrastructure/reports"
	"homeservices_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const startupTimeout = 30 * time.Second

var log = logger.For("server", "routes")

// Run wires the service and blocks serving HTTP on settings.Port.
func Run(settings config.Settings) error {
	router := NewRouter()

	h, err := buildHandlers(settings)
	if err != nil {
		return err
	}
	Register(router, h)

	log.WithField("port", settings.Port).Info("listening")
	return router.Run(fmt.Sprintf(":%d", settings.Port))
}

// NewRouter returns a gin engine with the service middleware installed.
func NewRouter() *gin.Engine {
	router := gin.New()
	setMiddlewares(router)
	return router
}

// Register mounts swagger and the public /v1 routes.
func Register(router *gin.Engine, h Handlers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCRMRoutes(v1, h)
}

func buildHandlers(settings config.Settings) (Handlers, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	prices, err := config.NewPricingSource(settings.PricingFile)
	if err != nil {
		return Handlers{}, err
	}
	prices.Watch()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return Handlers{}, err
	}
	if settings.AutoCreateTables {
		if err := database.EnsureTables(ctx, ddb, repository.TableDefinitions()); err != nil {
			return Handlers{}, err
		}
	}

	rdb := lock.NewRedisClient(settings.RedisAddr, settings.RedisPassword, settings.RedisDB)
	if err := lock.Ping(ctx, rdb); err != nil {
		return Handlers{}, err
	}
	locker := lock.NewRedisLocker(rdb)

	jobRepo := repository.NewJobDynamoRepository(ddb)
	measurementRepo := repository.NewMeasurementDynamoRepository(ddb)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	commissionRepo := repository.NewCommissionDynamoRepository(ddb)

	jobUseCase := usecase.NewJobUseCase(jobRepo, estimateRepo, commissionRepo, locker, prices, settings.Location)
	measurementUseCase := usecase.NewMeasurementUseCase(measurementRepo, jobRepo, estimateRepo, prices)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, jobRepo, measurementRepo, locker, prices, settings.Location)
	analyticsUseCase := usecase.NewAnalyticsUseCase(jobRepo, estimateRepo, commissionRepo, reports.NewExcelExporter(), prices, settings.Location)

	return Handlers{
		Jobs:         handlers.NewJobHandler(jobUseCase),
		Measurements: handlers.NewMeasurementHandler(measurementUseCase),
		Estimates:    handlers.NewEstimateHandler(estimateUseCase),
		Analytics:    handlers.NewAnalyticsHandler(analyticsUseCase),
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("path", c.Request.URL.Path).Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}
