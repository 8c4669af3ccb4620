package mail

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"proapp/internal/queue"
)

const (
	defaultWorkers = 4
	maxAttempts    = 3
)

// Dispatcher drains a job channel with a fixed pool of workers.
type Dispatcher struct {
	renderer   *Renderer
	sender     Sender
	workers    int
	retryDelay time.Duration
	log        *zap.Logger

	sent   atomic.Int64
	failed atomic.Int64
}

type Stats struct {
	Sent   int64
	Failed int64
}

func NewDispatcher(renderer *Renderer, sender Sender, workers int, log *zap.Logger) *Dispatcher {
	if workers < 1 {
		workers = defaultWorkers
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		renderer:   renderer,
		sender:     sender,
		workers:    workers,
		retryDelay: time.Second,
		log:        log.Named("mail.dispatcher"),
	}
}

// Run blocks until jobs is closed or ctx is cancelled and every worker has
// returned.
func (d *Dispatcher) Run(ctx context.Context, jobs <-chan queue.EmailJob) {
	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			d.work(ctx, id, jobs)
		}(i)
	}
	wg.Wait()
	st := d.Stats()
	d.log.Info("dispatcher stopped", zap.Int64("sent", st.Sent), zap.Int64("failed", st.Failed))
}

func (d *Dispatcher) Stats() Stats {
	return Stats{Sent: d.sent.Load(), Failed: d.failed.Load()}
}

func (d *Dispatcher) work(ctx context.Context, id int, jobs <-chan queue.EmailJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			if err := d.handle(ctx, job); err != nil {
				d.failed.Add(1)
				d.log.Error("email not sent",
					zap.Int("worker", id),
					zap.String("id", job.ID),
					zap.String("type", job.Type),
					zap.String("to", job.To),
					zap.Error(err),
				)
				continue
			}
			d.sent.Add(1)
		}
	}
}

// handle renders job and sends it, retrying transport errors.
func (d *Dispatcher) handle(ctx context.Context, job queue.EmailJob) error {
	msg, err := d.renderer.Render(job)
	if err != nil {
		return err
	}

	var sendErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if sendErr = d.sender.Send(ctx, msg); sendErr == nil {
			d.log.Info("email sent", zap.String("id", job.ID), zap.String("type", job.Type), zap.Int("attempt", attempt))
			return nil
		}
		if attempt == maxAttempts {
			break
		}
		d.log.Warn("send failed, retrying", zap.String("id", job.ID), zap.Int("attempt", attempt), zap.Error(sendErr))
		select {
		case <-ctx.Done():
			return errors.Join(sendErr, ctx.Err())
		case <-time.After(d.retryDelay * time.Duration(attempt)):
		}
	}
	return sendErr
}
