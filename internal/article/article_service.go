package article

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"proapp/internal/category"
	"proapp/internal/common"
	"proapp/internal/dbmysql"
)

//go:generate mockgen -source=article_service.go -destination=mock_article_service.go -package=article

const fallbackSlug = "article"

var (
	ErrTitleRequired   = fmt.Errorf("%w: title is required", common.ErrInvalidInput)
	ErrInvalidCategory = fmt.Errorf("%w: category not found", common.ErrInvalidInput)
)

// Input is used for create and sparse update. A nil field is left alone on
// update; category_id 0 detaches the article from its category.
type Input struct {
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	Excerpt     *string `json:"excerpt,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
	Type        *string `json:"type,omitempty"`
	CategoryID  *uint64 `json:"category_id,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

type ArticleService interface {
	List(ctx context.Context, q ListQuery) (*common.Page[*dbmysql.Article], error)
	Get(ctx context.Context, id uint64) (*dbmysql.Article, error)
	// GetBySlug counts a view of the article.
	GetBySlug(ctx context.Context, slug string) (*dbmysql.Article, error)
	Create(ctx context.Context, actor common.Actor, in Input) (*dbmysql.Article, error)
	Update(ctx context.Context, id uint64, in Input) (*dbmysql.Article, error)
	Delete(ctx context.Context, id uint64) error
	DeleteBulk(ctx context.Context, ids []uint64) (int64, error)
	CreateBulk(ctx context.Context, actor common.Actor, items []Input) ([]*dbmysql.Article, error)
	UpdateBulk(ctx context.Context, ids []uint64, in Input) ([]*dbmysql.Article, error)
	Reorder(ctx context.Context, ids []uint64) ([]*dbmysql.Article, error)
}

type articleService struct {
	repo ArticleRepository
	log  *zap.Logger
}

func NewArticleService(repo ArticleRepository, log *zap.Logger) ArticleService {
	if log == nil {
		log = zap.NewNop()
	}
	return &articleService{repo: repo, log: log.Named("article")}
}

func (s *articleService) List(ctx context.Context, q ListQuery) (*common.Page[*dbmysql.Article], error) {
	q = q.Normalize()
	articles, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return common.NewPage(articles, total, q.Page, q.Limit), nil
}

func (s *articleService) Get(ctx context.Context, id uint64) (*dbmysql.Article, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*dbmysql.Article, error) {
	a, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.repo.IncrementSeen(ctx, a.ID); err != nil {
		return nil, fmt.Errorf("count view: %w", err)
	}
	a.TotalSeen++
	return a, nil
}

func (s *articleService) Create(ctx context.Context, actor common.Actor, in Input) (*dbmysql.Article, error) {
	var created *dbmysql.Article
	err := s.repo.Transaction(ctx, func(tx ArticleRepository) error {
		if err := checkCategory(ctx, tx, in.CategoryID); err != nil {
			return err
		}
		a, err := s.newArticle(ctx, tx, actor, in)
		if err != nil {
			return err
		}
		if err := tx.Create(ctx, a); err != nil {
			return fmt.Errorf("create article: %w", err)
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("article created", zap.Uint64("article_id", created.ID), zap.String("slug", created.Slug))
	return s.repo.FindByID(ctx, created.ID)
}

// newArticle builds an unsaved article from in. Without an explicit order it
// goes after the articles of the same type. The category is not validated.
func (s *articleService) newArticle(ctx context.Context, tx ArticleRepository, actor common.Actor, in Input) (*dbmysql.Article, error) {
	title, ok := trimmed(in.Title)
	if !ok {
		return nil, ErrTitleRequired
	}
	slug, err := category.UniqueSlug(ctx, tx, title, fallbackSlug, 0)
	if err != nil {
		return nil, err
	}
	a := &dbmysql.Article{Title: title, Slug: slug}
	if actor.ID != 0 {
		author := actor.ID
		a.UserID = &author
	}
	apply(a, in)
	if in.Order == nil {
		n, err := tx.CountByType(ctx, a.Type)
		if err != nil {
			return nil, fmt.Errorf("count articles: %w", err)
		}
		a.Order = int(n) + 1
	}
	return a, nil
}

func (s *articleService) Update(ctx context.Context, id uint64, in Input) (*dbmysql.Article, error) {
	err := s.repo.Transaction(ctx, func(tx ArticleRepository) error {
		a, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := checkCategory(ctx, tx, in.CategoryID); err != nil {
			return err
		}
		return s.update(ctx, tx, a, in)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// update regenerates the slug only when the title actually changes.
func (s *articleService) update(ctx context.Context, tx ArticleRepository, a *dbmysql.Article, in Input) error {
	if title, ok := trimmed(in.Title); ok && title != a.Title {
		slug, err := category.UniqueSlug(ctx, tx, title, fallbackSlug, a.ID)
		if err != nil {
			return err
		}
		a.Title = title
		a.Slug = slug
	}
	apply(a, in)
	a.Category = nil
	if err := tx.Save(ctx, a); err != nil {
		return fmt.Errorf("save article: %w", err)
	}
	return nil
}

func apply(a *dbmysql.Article, in Input) {
	if in.Content != nil {
		a.Content = nullable(*in.Content)
	}
	if in.Excerpt != nil {
		a.Excerpt = nullable(*in.Excerpt)
	}
	if in.IsPublished != nil {
		a.IsPublished = *in.IsPublished
	}
	if in.Type != nil {
		a.Type = nullable(strings.TrimSpace(*in.Type))
	}
	if in.CategoryID != nil {
		if id := *in.CategoryID; id == 0 {
			a.CategoryID = nil
		} else {
			a.CategoryID = &id
		}
	}
	if in.Order != nil {
		a.Order = *in.Order
	}
}

// checkCategory rejects a category_id that names no live category.
func checkCategory(ctx context.Context, tx ArticleRepository, id *uint64) error {
	if id == nil || *id == 0 {
		return nil
	}
	if _, err := tx.Categories().FindByID(ctx, *id); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return ErrInvalidCategory
		}
		return fmt.Errorf("find category: %w", err)
	}
	return nil
}

func (s *articleService) Delete(ctx context.Context, id uint64) error {
	n, err := s.repo.Delete(ctx, []uint64{id})
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	s.log.Info("article deleted", zap.Uint64("article_id", id))
	return nil
}

func (s *articleService) DeleteBulk(ctx context.Context, ids []uint64) (int64, error) {
	var deleted int64
	err := s.repo.Transaction(ctx, func(tx ArticleRepository) error {
		n, err := tx.Delete(ctx, ids)
		deleted = n
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete articles: %w", err)
	}
	s.log.Info("articles deleted", zap.Int("requested", len(ids)), zap.Int64("deleted", deleted))
	return deleted, nil
}

// CreateBulk creates items in one transaction. An unknown category_id is
// dropped rather than failing the item.
func (s *articleService) CreateBulk(ctx context.Context, actor common.Actor, items []Input) ([]*dbmysql.Article, error) {
	ids := make([]uint64, 0, len(items))
	err := s.repo.Transaction(ctx, func(tx ArticleRepository) error {
		ids = ids[:0]
		for i, in := range items {
			if err := checkCategory(ctx, tx, in.CategoryID); err != nil {
				if !errors.Is(err, ErrInvalidCategory) {
					return err
				}
				in.CategoryID = nil
			}
			a, err := s.newArticle(ctx, tx, actor, in)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			if err := tx.Create(ctx, a); err != nil {
				return fmt.Errorf("item %d: create article: %w", i, err)
			}
			ids = append(ids, a.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByIDs(ctx, ids)
}

// UpdateBulk applies the same patch to every live id and skips unknown
// ids. An unknown category_id rolls the batch back.
func (s *articleService) UpdateBulk(ctx context.Context, ids []uint64, in Input) ([]*dbmysql.Article, error) {
	updated := make([]uint64, 0, len(ids))
	err := s.repo.Transaction(ctx, func(tx ArticleRepository) error {
		updated = updated[:0]
		if err := checkCategory(ctx, tx, in.CategoryID); err != nil {
			return err
		}
		for _, id := range ids {
			a, err := tx.FindByID(ctx, id)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if err := s.update(ctx, tx, a, in); err != nil {
				return fmt.Errorf("article %d: %w", id, err)
			}
			updated = append(updated, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByIDs(ctx, updated)
}

// Reorder numbers the live ids from 1 in the given order. Unknown ids keep
// no position.
func (s *articleService) Reorder(ctx context.Context, ids []uint64) ([]*dbmysql.Article, error) {
	placed := make([]uint64, 0, len(ids))
	err := s.repo.Transaction(ctx, func(tx ArticleRepository) error {
		placed = placed[:0]
		for _, id := range ids {
			err := tx.UpdateOrder(ctx, id, len(placed)+1)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("article %d: %w", id, err)
			}
			placed = append(placed, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByIDs(ctx, placed)
}

func trimmed(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	v := strings.TrimSpace(*p)
	return v, v != ""
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
