package article

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"proapp/internal/category"
	"proapp/internal/common"
	"proapp/internal/dbmysql"
)

var ErrNotFound = errors.New("article not found")

type ArticleRepository interface {
	Transaction(ctx context.Context, fn func(repo ArticleRepository) error) error
	// Categories is bound to the same connection or transaction.
	Categories() category.CategoryRepository

	FindByID(ctx context.Context, id uint64) (*dbmysql.Article, error)
	FindBySlug(ctx context.Context, slug string) (*dbmysql.Article, error)
	// FindByIDs keeps the order of ids.
	FindByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.Article, error)
	SlugTaken(ctx context.Context, slug string, excludeID uint64) (bool, error)
	CountByType(ctx context.Context, typ *string) (int64, error)

	Create(ctx context.Context, article *dbmysql.Article) error
	Save(ctx context.Context, article *dbmysql.Article) error
	IncrementSeen(ctx context.Context, id uint64) error
	UpdateOrder(ctx context.Context, id uint64, order int) error
	Delete(ctx context.Context, ids []uint64) (int64, error)

	List(ctx context.Context, q ListQuery) ([]*dbmysql.Article, int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Transaction(ctx context.Context, fn func(repo ArticleRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&articleRepository{db: tx})
	})
}

func (r *articleRepository) Categories() category.CategoryRepository {
	return category.NewCategoryRepository(r.db)
}

func (r *articleRepository) first(q *gorm.DB) (*dbmysql.Article, error) {
	var article dbmysql.Article
	if err := q.Preload("Category").First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindByID(ctx context.Context, id uint64) (*dbmysql.Article, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *articleRepository) FindBySlug(ctx context.Context, slug string) (*dbmysql.Article, error) {
	return r.first(r.db.WithContext(ctx).Where("slug = ?", slug))
}

func (r *articleRepository) FindByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.Article, error) {
	out := make([]*dbmysql.Article, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var found []*dbmysql.Article
	if err := r.db.WithContext(ctx).Preload("Category").Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint64]*dbmysql.Article, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
			delete(byID, id)
		}
	}
	return out, nil
}

func (r *articleRepository) SlugTaken(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&dbmysql.Article{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *articleRepository) CountByType(ctx context.Context, typ *string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&dbmysql.Article{})
	if typ == nil {
		q = q.Where("type IS NULL")
	} else {
		q = q.Where("type = ?", *typ)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *articleRepository) Create(ctx context.Context, article *dbmysql.Article) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(article).Error
}

func (r *articleRepository) Save(ctx context.Context, article *dbmysql.Article) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(article).Error
}

func (r *articleRepository) IncrementSeen(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Model(&dbmysql.Article{}).Where("id = ?", id).
		UpdateColumn("total_seen", gorm.Expr("total_seen + ?", 1)).Error
}

func (r *articleRepository) UpdateOrder(ctx context.Context, id uint64, order int) error {
	res := r.db.WithContext(ctx).Model(&dbmysql.Article{}).Where("id = ?", id).Update("order", order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&dbmysql.Article{})
	return res.RowsAffected, res.Error
}

func (r *articleRepository) List(ctx context.Context, q ListQuery) ([]*dbmysql.Article, int64, error) {
	base := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&dbmysql.Article{})
		if q.Type != "" {
			db = db.Where("articles.type = ?", q.Type)
		}
		if q.CategoryID != nil {
			db = db.Where("articles.category_id = ?", *q.CategoryID)
		}
		if q.IsPublished != nil {
			db = db.Where("articles.is_published = ?", *q.IsPublished)
		}
		if kw := strings.TrimSpace(q.Keyword); kw != "" {
			pattern := common.ContainsPattern(kw)
			db = db.Joins("LEFT JOIN categories ON categories.id = articles.category_id AND categories.deleted_at IS NULL").
				Where("articles.title LIKE ? ESCAPE '!' OR articles.excerpt LIKE ? ESCAPE '!' OR categories.name LIKE ? ESCAPE '!'",
					pattern, pattern, pattern)
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []*dbmysql.Article
	err := base().
		Select("articles.*").
		Preload("Category").
		Order(q.orderClause()).
		Offset(q.offset()).
		Limit(q.Limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}
