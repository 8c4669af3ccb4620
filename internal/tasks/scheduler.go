package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultRunTimeout = 30 * time.Minute

type Task interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs tasks on standard five-field cron specs. A run that is
// still going when its next tick fires is skipped.
type Scheduler struct {
	cron       *cron.Cron
	ctx        context.Context
	cancel     context.CancelFunc
	runTimeout time.Duration
	log        *zap.Logger
}

func NewScheduler(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("scheduler")
	cl := cronLogger{log: log}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:       cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		ctx:        ctx,
		cancel:     cancel,
		runTimeout: defaultRunTimeout,
		log:        log,
	}
}

func (s *Scheduler) Add(spec string, task Task) (cron.EntryID, error) {
	id, err := s.cron.AddFunc(spec, func() { s.run(task) })
	if err != nil {
		return 0, fmt.Errorf("schedule %s %q: %w", task.Name(), spec, err)
	}
	s.log.Info("task scheduled", zap.String("task", task.Name()), zap.String("spec", spec))
	return id, nil
}

func (s *Scheduler) run(task Task) {
	ctx, cancel := context.WithTimeout(s.ctx, s.runTimeout)
	defer cancel()

	start := time.Now()
	if err := task.Run(ctx); err != nil {
		s.log.Error("task failed", zap.String("task", task.Name()), zap.Duration("took", time.Since(start)), zap.Error(err))
		return
	}
	s.log.Info("task done", zap.String("task", task.Name()), zap.Duration("took", time.Since(start)))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running tasks and waits for them until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
