package common

import (
	"context"

	"proapp/internal/dbmysql"
)

// Actor is the authenticated caller of a request.
type Actor struct {
	ID       uint64
	Username string
	Language string
	Roles    []string
	TokenID  string
}

func ActorFromUser(u *dbmysql.User) Actor {
	return Actor{
		ID:       u.ID,
		Username: u.UsernameOrEmpty(),
		Language: u.Language,
		Roles:    append([]string(nil), u.Roles...),
	}
}

func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type ctxKey int

const actorKey ctxKey = iota

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey).(Actor)
	return a, ok
}
