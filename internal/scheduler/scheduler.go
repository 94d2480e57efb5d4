package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	portssvc "github.com/PettaPuang/nozzle.website-sub005/internal/core/ports/services"
)

// Start launches the background scheduler that runs the batch monthly
// closing on the first day of each month, after local midnight so the
// previous month is fully over. Returns the scheduler so the caller can stop
// it on shutdown.
func Start(logger *slog.Logger, closingSvc portssvc.ClosingSvcFacade) (*gocron.Scheduler, error) {
	location, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return nil, err
	}

	s := gocron.NewScheduler(location)
	_, err = s.Every(1).Month(1).At("01:00").Do(func() {
		logger.Info("Scheduled monthly closing started")
		summary, err := closingSvc.AutoCloseAll(context.Background(), time.Now().In(location))
		if err != nil {
			logger.Error("Scheduled monthly closing failed", slog.String("error", err.Error()))
			return
		}
		logger.Info("Scheduled monthly closing finished",
			slog.Int("success_count", summary.SuccessCount),
			slog.Int("fail_count", summary.FailCount),
		)
	})
	if err != nil {
		return nil, err
	}

	s.StartAsync()
	return s, nil
}
