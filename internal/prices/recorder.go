package prices

import (
	"context"
	"fmt"
	"time"

	"goldrates/internal/adapters"
	"goldrates/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Recorder periodically persists the served snapshot so history queries can
// chart quotes over time. Recording failures are logged and retried on the
// next tick, never fatal.
type Recorder struct {
	service  *Service
	history  adapters.HistoryRepository
	interval time.Duration
	// -----
	sched gocron.Scheduler
}

func NewRecorder(service *Service, history adapters.HistoryRepository, interval time.Duration) *Recorder {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Recorder{service: service, history: history, interval: interval}
}

func (r *Recorder) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	r.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if recErr := RecordSnapshot(jobCtx, execID, r.service, r.history); recErr != nil {
			logrus.Errorf("Snapshot recording %s failed: %v", execID, recErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := r.Shutdown(); sdErr != nil {
			logrus.Errorf("Recorder shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (r *Recorder) Shutdown() error {
	if r.sched == nil {
		return nil
	}
	err := r.sched.Shutdown()
	r.sched = nil
	return err
}

// RecordSnapshot fetches the snapshot exactly as it would be served and
// persists every quote in it.
func RecordSnapshot(ctx context.Context, execID string, service *Service, history adapters.HistoryRepository) error {
	snapshot := service.GetPrices(ctx, domain.CategoryAll)
	set := domain.PriceSet{Gold: snapshot.Gold, Currency: snapshot.Currency}

	if err := history.InsertQuotes(ctx, snapshot.LastUpdate, set); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}

	logrus.Infof("Recorded %d gold and %d currency quotes; execID: %s", len(set.Gold), len(set.Currency), execID)
	return nil
}
