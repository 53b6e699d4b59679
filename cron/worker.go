package cron

import (
	"context"
	"errors"
	"time"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/config"
	bookingRepo "github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/database/repository/booking"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/services/events"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/services/tasks"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the asynq connection for the booking submission queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitBookingWorker starts the booking submission worker in the background. The
// returned server must be shut down by the caller.
func InitBookingWorker(repo bookingRepo.BookingRequestRepository, publisher events.Publisher) *asynq.Server {
	logger := utils.GetLogger()

	concurrency := config.AppConfig.WorkerConcurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				tasks.QueueBookings: 6,
				"default":           1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingRequest, HandleBookingRequestTask(repo, publisher, logger))

	go func() {
		logger.Info("Starting booking worker", zap.Int("concurrency", concurrency))
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Error("Booking worker failed to start", zap.Int("attempt", attempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("Booking worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleBookingRequestTask stores a submitted booking request and announces it.
// A request that is already stored is acknowledged so redelivery is harmless.
func HandleBookingRequestTask(repo bookingRepo.BookingRequestRepository, publisher events.Publisher, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		req, err := tasks.ParseBookingRequest(task)
		if err != nil {
			logger.Error("Invalid booking request payload", zap.Error(err))
			return errors.Join(err, asynq.SkipRetry)
		}

		req.Status = "received"
		switch err := repo.Create(ctx, req); {
		case errors.Is(err, bookingRepo.ErrDuplicate):
			logger.Info("Booking request already stored", zap.String("bookingID", req.ID))
		case err != nil:
			logger.Error("Failed to store booking request", zap.String("bookingID", req.ID), zap.Error(err))
			return err
		default:
			logger.Info("Booking request stored",
				zap.String("bookingID", req.ID),
				zap.String("offeringID", req.OfferingID),
				zap.String("occurrenceID", req.OccurrenceID),
				zap.Int("quantity", req.Quantity))
		}

		if err := publisher.PublishBookingRequested(ctx, req); err != nil {
			logger.Warn("Failed to publish booking event", zap.String("bookingID", req.ID), zap.Error(err))
			return err
		}
		return nil
	}
}
