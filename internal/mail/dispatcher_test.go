package mail

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"proapp/internal/queue"
)

type fakeSender struct {
	mu       sync.Mutex
	sent     []Message
	attempts map[string]int
	// failures per recipient before a send succeeds; -1 fails forever
	failures map[string]int
}

func newFakeSender() *fakeSender {
	return &fakeSender{attempts: map[string]int{}, failures: map[string]int{}}
}

func (s *fakeSender) Send(_ context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[msg.To]++
	if n := s.failures[msg.To]; n < 0 || s.attempts[msg.To] <= n {
		return errors.New("smtp unavailable")
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *fakeSender) recipients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.sent))
	for _, m := range s.sent {
		out = append(out, m.To)
	}
	sort.Strings(out)
	return out
}

func newTestDispatcher(t *testing.T, sender Sender, workers int) *Dispatcher {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	d := NewDispatcher(r, sender, workers, zap.NewNop())
	d.retryDelay = time.Millisecond
	return d
}

func verifyJob(to string) queue.EmailJob {
	return queue.NewEmailJob(queue.JobVerifyAccount, to, "en", map[string]string{"url": "https://app/verify?token=x", "token": "x"})
}

func TestDispatcher_Run(t *testing.T) {
	sender := newFakeSender()
	sender.failures["flaky@proapp.test"] = 2
	sender.failures["down@proapp.test"] = -1
	d := newTestDispatcher(t, sender, 3)

	jobs := make(chan queue.EmailJob, 8)
	jobs <- verifyJob("a@proapp.test")
	jobs <- verifyJob("b@proapp.test")
	jobs <- verifyJob("flaky@proapp.test")
	jobs <- verifyJob("down@proapp.test")
	jobs <- queue.EmailJob{ID: "bad", Type: "email.unknown", To: "c@proapp.test"}
	close(jobs)

	d.Run(context.Background(), jobs)

	assert.Equal(t, []string{"a@proapp.test", "b@proapp.test", "flaky@proapp.test"}, sender.recipients())
	assert.Equal(t, Stats{Sent: 3, Failed: 2}, d.Stats())
	assert.Equal(t, 3, sender.attempts["flaky@proapp.test"])
	assert.Equal(t, maxAttempts, sender.attempts["down@proapp.test"])
	assert.Zero(t, sender.attempts["c@proapp.test"], "unrenderable jobs are not sent")
}

func TestDispatcher_StopsOnCancel(t *testing.T) {
	d := newTestDispatcher(t, newFakeSender(), 2)
	jobs := make(chan queue.EmailJob)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		d.Run(ctx, jobs)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop")
	}
}

func TestDispatcher_DefaultWorkers(t *testing.T) {
	d := NewDispatcher(nil, nil, 0, nil)
	assert.Equal(t, defaultWorkers, d.workers)
}
