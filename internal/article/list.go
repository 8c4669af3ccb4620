package article

import (
	"strings"

	"gorm.io/gorm/clause"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

var orderColumns = map[string]string{
	"id":           "articles.id",
	"title":        "articles.title",
	"slug":         "articles.slug",
	"type":         "articles.type",
	"order":        "articles.order",
	"total_seen":   "articles.total_seen",
	"is_published": "articles.is_published",
	"created_at":   "articles.created_at",
	"updated_at":   "articles.updated_at",
}

type ListQuery struct {
	Page        int
	Limit       int
	Keyword     string
	Type        string
	CategoryID  *uint64
	IsPublished *bool
	OrderBy     string
	SortBy      string
}

// Normalize clamps paging. Without an explicit order the newest come first.
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
	q.SortBy = strings.ToLower(q.SortBy)
	if _, ok := orderColumns[q.OrderBy]; !ok {
		q.OrderBy = "created_at"
		q.SortBy = "desc"
	}
	if q.SortBy != "desc" {
		q.SortBy = "asc"
	}
	return q
}

// orderClause sorts keyword searches by title, as relevance has no column.
func (q ListQuery) orderClause() clause.OrderBy {
	if strings.TrimSpace(q.Keyword) != "" {
		return orderBy("articles.title", false)
	}
	col, ok := orderColumns[q.OrderBy]
	if !ok {
		col = "articles.created_at"
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
	table, name, _ := strings.Cut(col, ".")
	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Table: table, Name: name}, Desc: desc},
		{Column: clause.Column{Table: table, Name: "id"}, Desc: desc},
	}}
}
