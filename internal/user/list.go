package user

import (
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// sortable columns accepted by ListQuery.OrderBy
var orderColumns = map[string]string{
	"id":           "users.id",
	"email":        "users.email",
	"username":     "users.username",
	"created_at":   "users.created_at",
	"updated_at":   "users.updated_at",
	"logged_in_at": "users.logged_in_at",
	"name":         "profiles.name",
}

type ListQuery struct {
	Page          int
	Limit         int
	Role          string
	IsVerified    *bool
	IsBanned      *bool
	LoggedInSince *time.Time
	Keyword       string
	OrderBy       string
	SortBy        string
}

// Normalize clamps paging and drops unknown sort columns.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if _, ok := orderColumns[q.OrderBy]; !ok {
		q.OrderBy = "created_at"
	}
	if q.SortBy != "desc" {
		q.SortBy = "asc"
	}
	return q
}

func (q ListQuery) orderClause() string {
	col, ok := orderColumns[q.OrderBy]
	if !ok {
		col = orderColumns["created_at"]
	}
	dir := "ASC"
	if q.SortBy == "desc" {
		dir = "DESC"
	}
	// id breaks ties so pages stay stable
	return col + " " + dir + ", users.id " + dir
}

func (q ListQuery) offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}
