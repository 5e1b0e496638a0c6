package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoller struct {
	calls atomic.Int32
	err   error
}

func (r *stubRoller) RollOverdue(ctx context.Context) (int, error) {
	r.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("job context has no deadline")
	}
	return 3, r.err
}

type stubPurger struct {
	calls atomic.Int32
}

func (p *stubPurger) PurgeSessions(context.Context) (int64, error) {
	p.calls.Add(1)
	return 1, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunOnce(t *testing.T) {
	t.Run("runs every job", func(t *testing.T) {
		r, p := &stubRoller{}, &stubPurger{}
		s := New(r, p, discardLogger(), "@daily", "@hourly")

		s.RunOnce(context.Background())
		assert.Equal(t, int32(1), r.calls.Load())
		assert.Equal(t, int32(1), p.calls.Load())
	})

	t.Run("roll failure does not stop purge", func(t *testing.T) {
		r, p := &stubRoller{err: errors.New("boom")}, &stubPurger{}
		s := New(r, p, discardLogger(), "@daily", "@hourly")

		s.RunOnce(context.Background())
		assert.Equal(t, int32(1), p.calls.Load())
	})

	t.Run("no purger", func(t *testing.T) {
		r := &stubRoller{}
		s := New(r, nil, discardLogger(), "@daily", "")

		s.RunOnce(context.Background())
		assert.Equal(t, int32(1), r.calls.Load())
	})
}

func TestScheduler_Start(t *testing.T) {
	t.Run("invalid spec", func(t *testing.T) {
		s := New(&stubRoller{}, &stubPurger{}, discardLogger(), "every tuesday", "@hourly")
		assert.Error(t, s.Start())
	})

	t.Run("fires on schedule", func(t *testing.T) {
		r := &stubRoller{}
		s := New(r, &stubPurger{}, discardLogger(), "@every 1s", "")
		require.NoError(t, s.Start())
		defer s.Stop()

		assert.Eventually(t, func() bool { return r.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	})
}
