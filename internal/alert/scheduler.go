package alert

import (
	"context"
	"time"

	"cambio/internal/adapters"
	"cambio/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultEvaluateInterval = 60 * time.Second

// Recorder receives evaluation results for metrics.
type Recorder interface {
	AlertsNotified(n int)
	AlertEvaluation(seconds float64)
}

type nopRecorder struct{}

func (nopRecorder) AlertsNotified(int)      {}
func (nopRecorder) AlertEvaluation(float64) {}

type Scheduler struct {
	alertRepo adapters.AlertRepository
	rates     domain.RateTable
	recorder  Recorder
	// -----
	evaluateJobDuration time.Duration
	sched               gocron.Scheduler
}

func (s *Scheduler) runOnce(ctx context.Context) {
	execID := uuid.NewString()
	started := time.Now()
	n, err := EvaluateAlerts(ctx, execID, s.alertRepo, s.rates, started.UTC())
	s.recorder.AlertEvaluation(time.Since(started).Seconds())
	if err != nil {
		logrus.Errorf("Evaluate alerts job %s failed: %v", execID, err)
		return
	}
	s.recorder.AlertsNotified(n)
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.evaluateJobDuration),
		gocron.NewTask(s.runOnce),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)

	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(alertRepo adapters.AlertRepository, rates domain.RateTable, recorder Recorder, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultEvaluateInterval
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Scheduler{alertRepo: alertRepo, rates: rates, recorder: recorder, evaluateJobDuration: interval}
}
