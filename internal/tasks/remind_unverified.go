// Package tasks holds the jobs run by the cron scheduler.
package tasks

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"proapp/internal/dbmysql"
)

const RemindUnverifiedSpec = "1 */12 * * *"

// UnverifiedLister is satisfied by user.UserRepository.
type UnverifiedLister interface {
	ListUnverifiedBefore(ctx context.Context, before time.Time) ([]*dbmysql.User, error)
}

// VerificationSender is satisfied by auth.AuthService.
type VerificationSender interface {
	SendVerification(ctx context.Context, u *dbmysql.User) error
}

type Report struct {
	Visited int
	Sent    int
	Failed  int
}

// RemindUnverified mails every unverified account its verification link
// again, reusing the pending token when there is one.
type RemindUnverified struct {
	users  UnverifiedLister
	sender VerificationSender
	log    *zap.Logger
	now    func() time.Time
}

func NewRemindUnverified(users UnverifiedLister, sender VerificationSender, log *zap.Logger) *RemindUnverified {
	if log == nil {
		log = zap.NewNop()
	}
	return &RemindUnverified{users: users, sender: sender, log: log.Named("task.remind_unverified"), now: time.Now}
}

func (t *RemindUnverified) Name() string { return "remind_unverified" }

func (t *RemindUnverified) Run(ctx context.Context) error {
	_, err := t.Remind(ctx)
	return err
}

// Remind fails only when the listing fails. A failure for one user is
// logged and the run moves on.
func (t *RemindUnverified) Remind(ctx context.Context) (Report, error) {
	users, err := t.users.ListUnverifiedBefore(ctx, t.now())
	if err != nil {
		return Report{}, fmt.Errorf("list unverified users: %w", err)
	}

	var rep Report
	for _, u := range users {
		if err := ctx.Err(); err != nil {
			t.log.Warn("run interrupted", zap.Int("visited", rep.Visited), zap.Int("remaining", len(users)-rep.Visited))
			return rep, err
		}
		rep.Visited++
		if err := t.sender.SendVerification(ctx, u); err != nil {
			rep.Failed++
			t.log.Error("remind failed", zap.Uint64("user_id", u.ID), zap.String("email", u.Email), zap.Error(err))
			continue
		}
		rep.Sent++
	}
	t.log.Info("reminders queued", zap.Int("visited", rep.Visited), zap.Int("sent", rep.Sent), zap.Int("failed", rep.Failed))
	return rep, nil
}
