package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/config"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/cron"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/database"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/database/repository"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/handlers"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/routes"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/services/booking"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/services/events"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/services/tasks"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer utils.SyncLogger()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	shutdownTracing, err := utils.InitTracing(rootCtx)
	if err != nil {
		logger.Fatal("main: failed to initialize tracing", zap.Error(err))
	}

	database.InitDB()
	utils.InitSessionCache()

	// repositories.
	offerings := repository.NewMongoOfferingRepo()
	requests := repository.NewMongoBookingRequestRepo()
	if err := repository.EnsureIndexes(offerings, requests); err != nil {
		logger.Fatal("main: failed to ensure indexes", zap.Error(err))
	}

	// booking submission queue and event stream.
	queueClient := asynq.NewClient(cron.QueueRedisOpt())
	var publisher events.Publisher = events.NoopPublisher{}
	if brokers := config.SplitList(config.AppConfig.KafkaBrokers); len(brokers) > 0 {
		publisher = events.NewKafkaPublisher(brokers, config.AppConfig.KafkaBookingTopic)
		logger.Info("Publishing booking events to Kafka",
			zap.Strings("brokers", brokers),
			zap.String("topic", config.AppConfig.KafkaBookingTopic))
	}
	worker := cron.InitBookingWorker(requests, publisher)

	// services.
	bookingService := &booking.DefaultBookingService{
		Offerings:  offerings,
		Sessions:   &booking.RedisSessionStore{Client: utils.GetSessionCacheClient()},
		Queue:      &tasks.AsynqBookingQueue{Client: queueClient},
		SessionTTL: config.AppConfig.SessionTTL,
		Location:   config.Location(),
		Currency:   config.AppConfig.Currency,
		Now:        time.Now,
		Logger:     logger,
	}
	handlerBundle := handlers.NewHandlerBundle(handlers.NewScheduleHandler(bookingService), utils.HealthHandler)

	queueOpt := cron.QueueRedisOpt()
	queueRedis := redis.NewClient(&redis.Options{
		Addr:     queueOpt.Addr,
		Password: queueOpt.Password,
		DB:       queueOpt.DB,
	})
	utils.StartHealthMonitor(rootCtx, []*redis.Client{utils.GetSessionCacheClient(), queueRedis}, database.MongoClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.RegisterMiddleware(router)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: otelhttp.NewHandler(router, config.AppConfig.OTelServiceName),
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	worker.Shutdown()
	if err := queueClient.Close(); err != nil {
		logger.Warn("main: failed to close queue client", zap.Error(err))
	}
	if err := publisher.Close(); err != nil {
		logger.Warn("main: failed to close event publisher", zap.Error(err))
	}
	if err := queueRedis.Close(); err != nil {
		logger.Warn("main: failed to close queue redis client", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Warn("main: failed to flush traces", zap.Error(err))
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
