package category

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"proapp/internal/common"
	"proapp/internal/dbmysql"
)

var ErrNotFound = errors.New("category not found")

type CategoryRepository interface {
	Transaction(ctx context.Context, fn func(repo CategoryRepository) error) error

	FindByID(ctx context.Context, id uint64) (*dbmysql.Category, error)
	FindBySlug(ctx context.Context, slug string) (*dbmysql.Category, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.Category, error)
	// SlugTaken also sees trashed rows, which still hold the unique index.
	SlugTaken(ctx context.Context, slug string, excludeID uint64) (bool, error)

	Create(ctx context.Context, category *dbmysql.Category) error
	Save(ctx context.Context, category *dbmysql.Category) error
	UpdateOrder(ctx context.Context, id uint64, order int) error
	// Delete trashes ids and their direct children, and reports how many of
	// ids were deleted.
	Delete(ctx context.Context, ids []uint64) (int64, error)

	List(ctx context.Context, q ListQuery) ([]*dbmysql.Category, int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Transaction(ctx context.Context, fn func(repo CategoryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&categoryRepository{db: tx})
	})
}

func (r *categoryRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Children", func(db *gorm.DB) *gorm.DB {
		return db.Order(byPosition)
	})
}

func (r *categoryRepository) first(q *gorm.DB) (*dbmysql.Category, error) {
	var category dbmysql.Category
	if err := q.First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint64) (*dbmysql.Category, error) {
	return r.first(r.withChildren(ctx).Where("id = ?", id))
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*dbmysql.Category, error) {
	return r.first(r.withChildren(ctx).Where("slug = ?", slug))
}

func (r *categoryRepository) FindByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.Category, error) {
	var categories []*dbmysql.Category
	if len(ids) == 0 {
		return categories, nil
	}
	err := r.withChildren(ctx).Where("id IN ?", ids).Order(byPosition).Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) SlugTaken(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&dbmysql.Category{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) Create(ctx context.Context, category *dbmysql.Category) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error
}

func (r *categoryRepository) Save(ctx context.Context, category *dbmysql.Category) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(category).Error
}

func (r *categoryRepository) UpdateOrder(ctx context.Context, id uint64, order int) error {
	res := r.db.WithContext(ctx).Model(&dbmysql.Category{}).Where("id = ?", id).Update("order", order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	db := r.db.WithContext(ctx)
	if err := db.Where("parent_id IN ?", ids).Delete(&dbmysql.Category{}).Error; err != nil {
		return 0, err
	}
	res := db.Where("id IN ?", ids).Delete(&dbmysql.Category{})
	return res.RowsAffected, res.Error
}

func (r *categoryRepository) List(ctx context.Context, q ListQuery) ([]*dbmysql.Category, int64, error) {
	base := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&dbmysql.Category{})
		if q.Type != "" {
			db = db.Where("type = ?", q.Type)
		}
		if q.ParentID != nil {
			db = db.Where("parent_id = ?", *q.ParentID)
		} else {
			db = db.Where("parent_id IS NULL")
		}
		if kw := strings.TrimSpace(q.Keyword); kw != "" {
			db = db.Where("name LIKE ? ESCAPE '!'", common.ContainsPattern(kw))
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []*dbmysql.Category
	err := base().
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order(byPosition)
		}).
		Order(q.orderClause()).
		Offset(q.offset()).
		Limit(q.Limit).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}
