// Package jobs содержит фоновые задачи сервиса.
package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/eatease/EatEase-BookingService/pkg/metrics"
)

// BookingSweeper интерфейс сервиса, умеющего помечать просроченные бронирования
type BookingSweeper interface {
	SweepNoShows(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NoShowSweeper периодически переводит просроченные booked-бронирования в no_show
type NoShowSweeper struct {
	service  BookingSweeper
	metrics  *metrics.Metrics
	interval time.Duration
	logger   Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewNoShowSweeper создает свипер с указанным интервалом. Метрики опциональны (nil).
func NewNoShowSweeper(service BookingSweeper, m *metrics.Metrics, interval time.Duration, logger Logger) *NoShowSweeper {
	return &NoShowSweeper{
		service:  service,
		metrics:  m,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start запускает фоновый цикл. Первый проход выполняется сразу.
func (s *NoShowSweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *NoShowSweeper) run(ctx context.Context) {
	defer close(s.doneCh)

	s.logger.Info("NoShowSweeper: started, interval=%s", s.interval)
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopCh:
			s.logger.Info("NoShowSweeper: stopped")
			return
		case <-ctx.Done():
			s.logger.Info("NoShowSweeper: context cancelled")
			return
		}
	}
}

func (s *NoShowSweeper) sweep(ctx context.Context) {
	swept, err := s.service.SweepNoShows(ctx)
	if err != nil {
		s.logger.Error("NoShowSweeper: sweep failed: %v", err)
		return
	}

	if swept > 0 {
		s.logger.Info("NoShowSweeper: %d booking(s) marked no_show", swept)
		if s.metrics != nil {
			s.metrics.NoShowsSweptTotal.WithLabelValues("scheduled").Add(float64(swept))
		}
	}
}

// Stop останавливает цикл и дожидается завершения текущего прохода
func (s *NoShowSweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.doneCh
}
