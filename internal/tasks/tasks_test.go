package tasks

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"proapp/internal/dbmysql"
)

type fakeLister struct {
	users  []*dbmysql.User
	err    error
	before time.Time
}

func (f *fakeLister) ListUnverifiedBefore(_ context.Context, before time.Time) ([]*dbmysql.User, error) {
	f.before = before
	return f.users, f.err
}

type fakeSender struct {
	mu    sync.Mutex
	sent  []uint64
	fails map[uint64]error
}

func (f *fakeSender) SendVerification(_ context.Context, u *dbmysql.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fails[u.ID]; err != nil {
		return err
	}
	f.sent = append(f.sent, u.ID)
	return nil
}

func TestRemindUnverified(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 1, 0, 0, time.UTC)
	users := []*dbmysql.User{{ID: 1, Email: "a@x.io"}, {ID: 2, Email: "b@x.io"}, {ID: 3, Email: "c@x.io"}}

	tests := []struct {
		name     string
		listErr  error
		fails    map[uint64]error
		wantErr  bool
		wantSent []uint64
		wantRep  Report
	}{
		{
			name:     "everyone reminded",
			wantSent: []uint64{1, 2, 3},
			wantRep:  Report{Visited: 3, Sent: 3},
		},
		{
			name:     "one failure does not stop the run",
			fails:    map[uint64]error{2: errors.New("broker down")},
			wantSent: []uint64{1, 3},
			wantRep:  Report{Visited: 3, Sent: 2, Failed: 1},
		},
		{
			name:    "listing fails",
			listErr: errors.New("db down"),
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lister := &fakeLister{users: users, err: tc.listErr}
			sender := &fakeSender{fails: tc.fails}
			core, logs := observer.New(zap.InfoLevel)
			task := NewRemindUnverified(lister, sender, zap.New(core))
			task.now = func() time.Time { return now }

			rep, err := task.Remind(context.Background())
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, now, lister.before)
			assert.Equal(t, tc.wantRep, rep)
			assert.Equal(t, tc.wantSent, sender.sent)
			assert.Equal(t, tc.wantRep.Failed, logs.FilterMessage("remind failed").Len())
		})
	}
}

func TestRemindUnverified_StopsOnCancel(t *testing.T) {
	lister := &fakeLister{users: []*dbmysql.User{{ID: 1}, {ID: 2}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := NewRemindUnverified(lister, &fakeSender{}, nil).Remind(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rep.Visited)
}

type countingTask struct {
	runs atomic.Int32
	err  error
}

func (c *countingTask) Name() string { return "counting" }

func (c *countingTask) Run(context.Context) error {
	c.runs.Add(1)
	return c.err
}

func TestScheduler(t *testing.T) {
	s := NewScheduler(zap.NewNop())

	_, err := s.Add("not a spec", &countingTask{})
	require.Error(t, err)

	_, err = s.Add(RemindUnverifiedSpec, &countingTask{})
	require.NoError(t, err, "the reminder spec parses")

	task := &countingTask{err: errors.New("boom")}
	_, err = s.Add("@every 1s", task)
	require.NoError(t, err)

	s.Start()
	require.Eventually(t, func() bool { return task.runs.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}
