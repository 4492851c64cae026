//go:build e2e

package outbox_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"cowork-booking/internal/infra/messaging"
	"cowork-booking/internal/infra/notify"
	"cowork-booking/internal/infra/repository"
	"cowork-booking/internal/pkg/clock"
	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/tests/e2e"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var now = time.Date(2031, time.May, 1, 9, 0, 0, 0, time.UTC)

// topicPublisher fails every message sent to a topic listed in down.
type topicPublisher struct {
	mu   sync.Mutex
	down map[string]bool
	got  []messaging.Message
}

func (p *topicPublisher) Publish(_ context.Context, msg messaging.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.down[msg.Topic] {
		return errs.New("broker unavailable")
	}
	p.got = append(p.got, msg)
	return nil
}

func (p *topicPublisher) Close() error { return nil }

func (p *topicPublisher) delivered() []messaging.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]messaging.Message(nil), p.got...)
}

type jobRow struct {
	status    string
	attempts  int
	lastError pgtype.Text
	runAt     time.Time
}

type OutboxSuite struct {
	e2e.SharedSuite
}

func TestOutboxSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OutboxSuite))
}

func (s *OutboxSuite) enqueue(topic string) {
	err := repository.NewNotificationRepository(s.DB).
		CreateJob(context.Background(), "email", topic, []byte(`{"bookingId":"x"}`), now.Add(-time.Minute))
	s.Require().NoError(err)
}

func (s *OutboxSuite) job(topic string) jobRow {
	var r jobRow
	err := s.DB.QueryRow(context.Background(),
		"SELECT status, attempts, last_error, run_at FROM notification_jobs WHERE topic = $1", topic).
		Scan(&r.status, &r.attempts, &r.lastError, &r.runAt)
	s.Require().NoError(err)
	return r
}

func (s *OutboxSuite) TestDispatchOnce() {
	ctx := context.Background()

	s.Run("delivers healthy topics and requeues failures with backoff", func() {
		t := s.T()
		s.enqueue(notify.TopicBookingConfirmed)
		s.enqueue(notify.TopicBookingCancelled)

		pub := &topicPublisher{down: map[string]bool{notify.TopicBookingCancelled: true}}
		clk := clock.NewMockClock(now)
		d := notify.NewDispatcher(s.DB, pub, clk, config.NotifyConfig{BatchSize: 10, MaxAttempts: 2})

		sent, err := d.DispatchOnce(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, sent)
		require.Len(t, pub.delivered(), 1)
		require.Equal(t, notify.TopicBookingConfirmed, pub.delivered()[0].Topic)

		ok := s.job(notify.TopicBookingConfirmed)
		require.Equal(t, "sent", ok.status)
		require.Equal(t, 1, ok.attempts)
		require.False(t, ok.lastError.Valid)

		failed := s.job(notify.TopicBookingCancelled)
		require.Equal(t, "queued", failed.status)
		require.Equal(t, 1, failed.attempts)
		require.Equal(t, "broker unavailable", failed.lastError.String)
		require.True(t, failed.runAt.Equal(now.Add(time.Second)), "run_at %s", failed.runAt)

		// nothing is due before the backoff elapses
		sent, err = d.DispatchOnce(ctx)
		require.NoError(t, err)
		require.Zero(t, sent)
		require.Equal(t, 1, s.job(notify.TopicBookingCancelled).attempts)

		clk.Advance(2 * time.Second)
		sent, err = d.DispatchOnce(ctx)
		require.NoError(t, err)
		require.Zero(t, sent)

		dead := s.job(notify.TopicBookingCancelled)
		require.Equal(t, "failed", dead.status)
		require.Equal(t, 2, dead.attempts)

		clk.Advance(time.Hour)
		sent, err = d.DispatchOnce(ctx)
		require.NoError(t, err)
		require.Zero(t, sent)
		require.Equal(t, 2, s.job(notify.TopicBookingCancelled).attempts)
		require.Len(t, pub.delivered(), 1)
	})

	s.Run("a recovered broker drains the requeued job", func() {
		t := s.T()
		s.enqueue(notify.TopicApprovalReviewed)

		pub := &topicPublisher{down: map[string]bool{notify.TopicApprovalReviewed: true}}
		clk := clock.NewMockClock(now)
		d := notify.NewDispatcher(s.DB, pub, clk, config.NotifyConfig{BatchSize: 10, MaxAttempts: 5})

		sent, err := d.DispatchOnce(ctx)
		require.NoError(t, err)
		require.Zero(t, sent)

		pub.mu.Lock()
		pub.down = nil
		pub.mu.Unlock()
		clk.Advance(time.Minute)

		sent, err = d.DispatchOnce(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, sent)

		row := s.job(notify.TopicApprovalReviewed)
		require.Equal(t, "sent", row.status)
		require.Equal(t, 2, row.attempts)
		require.False(t, row.lastError.Valid)
		require.Equal(t, "email", pub.delivered()[0].Headers["kind"])
	})
}
