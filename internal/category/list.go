package category

import (
	"strings"

	"gorm.io/gorm/clause"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// "order" is a reserved word, so ordering goes through clause.OrderBy and
// gets dialect quoting.
var orderColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"slug":       "slug",
	"type":       "type",
	"order":      "order",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

var byPosition = orderBy("order", false)

type ListQuery struct {
	Page     int
	Limit    int
	Type     string
	ParentID *uint64
	Keyword  string
	OrderBy  string
	SortBy   string
}

// Normalize clamps paging and defaults to name ascending.
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
		q.OrderBy = "name"
	}
	q.SortBy = strings.ToLower(q.SortBy)
	if q.SortBy != "desc" {
		q.SortBy = "asc"
	}
	return q
}

func (q ListQuery) orderClause() clause.OrderBy {
	col, ok := orderColumns[q.OrderBy]
	if !ok {
		col = "name"
	}
	return orderBy(col, q.SortBy == "desc")
}

func (q ListQuery) offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

func orderBy(col string, desc bool) clause.OrderBy {
	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: col}, Desc: desc},
		{Column: clause.Column{Name: "id"}, Desc: desc},
	}}
}
