package user

import (
	"context"

	"proapp/internal/common"
	"proapp/internal/dbmysql"
	"proapp/internal/i18n"
)

// bulkCreateAcc is folded by value, one item at a time, in input order.
type bulkCreateAcc struct {
	created   []*dbmysql.User
	revived   []*dbmysql.User
	emailUsed []Declined
	skipped   []Declined
}

func (a bulkCreateAcc) add(in CreateInput, r Result) bulkCreateAcc {
	switch r.Outcome {
	case OutcomeCreated:
		a.created = append(a.created, r.User)
	case OutcomeRevived:
		a.revived = append(a.revived, r.User)
	case OutcomeEmailInUse:
		a.emailUsed = append(a.emailUsed, Declined{Input: in, Outcome: r.Outcome, Message: r.Message, Existing: r.User})
	default:
		a.skipped = append(a.skipped, Declined{Input: in, Outcome: r.Outcome, Message: r.Message})
	}
	return a
}

// CreateBulk reconciles items one after another. Each item commits or rolls
// back on its own, so one failure never undoes an earlier success.
func (s *userService) CreateBulk(ctx context.Context, items []CreateInput, actor common.Actor) BulkCreateResult {
	lang := i18n.Normalize(actor.Language)

	var acc bulkCreateAcc
	for _, item := range items {
		var r Result
		if err := ctx.Err(); err != nil {
			r = s.failed(lang, "user.create_failed", err)
		} else {
			r = s.ReconcileCreate(ctx, item, actor)
		}
		acc = acc.add(item, r)
	}

	return BulkCreateResult{
		Created:   orEmpty(acc.created),
		Revived:   orEmpty(acc.revived),
		EmailUsed: orEmpty(acc.emailUsed),
		Skipped:   orEmpty(acc.skipped),
		Message:   i18n.Tf(lang, "user.bulk_created", len(acc.created), len(acc.revived)),
	}
}

// UpdateBulk applies the same patch to every id, each in its own transaction,
// and reports a status per id.
func (s *userService) UpdateBulk(ctx context.Context, ids []uint64, in UpdateInput, actor common.Actor) BulkUpdateResult {
	lang := i18n.Normalize(actor.Language)

	out := BulkUpdateResult{Updated: []*dbmysql.User{}, Items: make([]ItemStatus, 0, len(ids))}
	for _, id := range ids {
		var r Result
		if err := ctx.Err(); err != nil {
			r = s.failed(lang, "user.update_failed", err)
		} else {
			r = s.ReconcileUpdate(ctx, id, in, actor)
		}
		if r.Outcome == OutcomeUpdated {
			out.Updated = append(out.Updated, r.User)
		}
		out.Items = append(out.Items, ItemStatus{ID: id, Outcome: r.Outcome, Message: r.Message})
	}
	out.Message = i18n.Tf(lang, "user.bulk_updated", len(out.Updated), len(ids))
	return out
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
