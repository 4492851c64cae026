package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"cowork-booking/internal/infra/messaging"
	"cowork-booking/internal/infra/repository"
	"cowork-booking/internal/pkg/clock"
	"cowork-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dispatcher drains the notification outbox into the message broker.
// Multiple instances can run side by side; rows are claimed with SKIP LOCKED.
type Dispatcher struct {
	pool        *pgxpool.Pool
	publisher   messaging.Publisher
	clock       clock.Clock
	pollEvery   time.Duration
	batchSize   int
	maxAttempts int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(pool *pgxpool.Pool, publisher messaging.Publisher, clock clock.Clock, cfg config.NotifyConfig) *Dispatcher {
	if cfg.PollEvery <= 0 {
		cfg.PollEvery = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &Dispatcher{
		pool:        pool,
		publisher:   publisher,
		clock:       clock,
		pollEvery:   cfg.PollEvery,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
	}
}

func (d *Dispatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.Run(ctx)
	}()
}

func (d *Dispatcher) Stop(ctx context.Context) error {
	if d.cancel != nil {
		d.cancel()
	}
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return d.publisher.Close()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.DispatchOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("notification dispatch failed", slog.Any("error", err))
			}
		}
	}
}

// DispatchOnce publishes one batch and returns how many jobs were sent.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	tx, err := d.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repo := repository.NewNotificationRepository(tx)
	now := d.clock.Now()
	jobs, err := repo.ClaimDue(ctx, now, d.batchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		pubErr := d.publisher.Publish(ctx, messaging.Message{
			Topic:   job.Topic,
			Key:     job.ID.String(),
			Payload: job.Payload,
			Headers: map[string]string{
				"job_id": job.ID.String(),
				"kind":   job.Kind,
			},
		})
		if pubErr != nil {
			retryAt := now.Add(backoff(job.Attempts))
			if err := repo.MarkFailed(ctx, job.ID, pubErr.Error(), d.maxAttempts, retryAt); err != nil {
				return sent, err
			}
			slog.Warn("notification publish failed",
				slog.String("job_id", job.ID.String()),
				slog.String("topic", job.Topic),
				slog.Int("attempt", job.Attempts+1),
				slog.Any("error", pubErr))
			continue
		}
		if err := repo.MarkSent(ctx, job.ID); err != nil {
			return sent, err
		}
		sent++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return sent, nil
}

func backoff(attempts int) time.Duration {
	if attempts > 6 {
		attempts = 6
	}
	return time.Duration(1<<attempts) * time.Second
}
