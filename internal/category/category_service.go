package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"proapp/internal/common"
	"proapp/internal/dbmysql"
)

//go:generate mockgen -source=category_service.go -destination=mock_category_service.go -package=category

var (
	ErrNameRequired  = fmt.Errorf("%w: name is required", common.ErrInvalidInput)
	ErrTypeRequired  = fmt.Errorf("%w: type is required", common.ErrInvalidInput)
	ErrInvalidParent = fmt.Errorf("%w: parent category", common.ErrInvalidInput)
)

// Input is used for create and sparse update. A nil field is left alone on
// update; parent_id 0 moves a category to the root.
type Input struct {
	Name            *string `json:"name,omitempty"`
	Type            *string `json:"type,omitempty"`
	ParentID        *uint64 `json:"parent_id,omitempty"`
	Icon            *string `json:"icon,omitempty"`
	BackgroundColor *string `json:"background_color,omitempty"`
	Description     *string `json:"description,omitempty"`
	Order           *int    `json:"order,omitempty"`
}

// ReorderNode is one root of the tree sent to Reorder.
type ReorderNode struct {
	ID       uint64        `json:"id"`
	Children []ReorderNode `json:"sub_categories"`
}

type CategoryService interface {
	List(ctx context.Context, q ListQuery) (*common.Page[*dbmysql.Category], error)
	Get(ctx context.Context, id uint64) (*dbmysql.Category, error)
	GetBySlug(ctx context.Context, slug string) (*dbmysql.Category, error)
	Create(ctx context.Context, in Input) (*dbmysql.Category, error)
	Update(ctx context.Context, id uint64, in Input) (*dbmysql.Category, error)
	Delete(ctx context.Context, id uint64) error
	DeleteBulk(ctx context.Context, ids []uint64) (int64, error)
	CreateBulk(ctx context.Context, items []Input) ([]*dbmysql.Category, error)
	UpdateBulk(ctx context.Context, ids []uint64, in Input) ([]*dbmysql.Category, error)
	Reorder(ctx context.Context, tree []ReorderNode) ([]*dbmysql.Category, error)
}

type categoryService struct {
	repo CategoryRepository
	log  *zap.Logger
}

func NewCategoryService(repo CategoryRepository, log *zap.Logger) CategoryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &categoryService{repo: repo, log: log.Named("category")}
}

func (s *categoryService) List(ctx context.Context, q ListQuery) (*common.Page[*dbmysql.Category], error) {
	q = q.Normalize()
	categories, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return common.NewPage(categories, total, q.Page, q.Limit), nil
}

func (s *categoryService) Get(ctx context.Context, id uint64) (*dbmysql.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*dbmysql.Category, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *categoryService) Create(ctx context.Context, in Input) (*dbmysql.Category, error) {
	var created *dbmysql.Category
	err := s.repo.Transaction(ctx, func(tx CategoryRepository) error {
		c, err := s.create(ctx, tx, in)
		created = c
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("category created", zap.Uint64("category_id", created.ID), zap.String("slug", created.Slug))
	return s.repo.FindByID(ctx, created.ID)
}

func (s *categoryService) create(ctx context.Context, tx CategoryRepository, in Input) (*dbmysql.Category, error) {
	name, ok := trimmed(in.Name)
	if !ok {
		return nil, ErrNameRequired
	}
	typ, ok := trimmed(in.Type)
	if !ok {
		return nil, ErrTypeRequired
	}
	c := &dbmysql.Category{Name: name, Type: typ}
	if err := s.apply(ctx, tx, c, in); err != nil {
		return nil, err
	}
	slug, err := uniqueSlug(ctx, tx, name, 0)
	if err != nil {
		return nil, err
	}
	c.Slug = slug
	if err := tx.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id uint64, in Input) (*dbmysql.Category, error) {
	err := s.repo.Transaction(ctx, func(tx CategoryRepository) error {
		c, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		return s.update(ctx, tx, c, in)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// update regenerates the slug only when the name actually changes.
func (s *categoryService) update(ctx context.Context, tx CategoryRepository, c *dbmysql.Category, in Input) error {
	if name, ok := trimmed(in.Name); ok && name != c.Name {
		slug, err := uniqueSlug(ctx, tx, name, c.ID)
		if err != nil {
			return err
		}
		c.Name = name
		c.Slug = slug
	}
	if typ, ok := trimmed(in.Type); ok {
		c.Type = typ
	}
	if err := s.apply(ctx, tx, c, in); err != nil {
		return err
	}
	c.Children = nil
	if err := tx.Save(ctx, c); err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

// apply copies the optional fields shared by create and update.
func (s *categoryService) apply(ctx context.Context, tx CategoryRepository, c *dbmysql.Category, in Input) error {
	if in.ParentID != nil {
		switch parentID := *in.ParentID; {
		case parentID == 0:
			c.ParentID = nil
		case parentID == c.ID:
			return ErrInvalidParent
		default:
			if _, err := tx.FindByID(ctx, parentID); err != nil {
				if errors.Is(err, ErrNotFound) {
					return ErrInvalidParent
				}
				return err
			}
			c.ParentID = &parentID
		}
	}
	if in.Icon != nil {
		c.Icon = nullable(*in.Icon)
	}
	if in.BackgroundColor != nil {
		c.BackgroundColor = nullable(*in.BackgroundColor)
	}
	if in.Description != nil {
		c.Description = nullable(*in.Description)
	}
	if in.Order != nil {
		c.Order = *in.Order
	}
	return nil
}

func (s *categoryService) Delete(ctx context.Context, id uint64) error {
	n, err := s.repo.Delete(ctx, []uint64{id})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	s.log.Info("category deleted", zap.Uint64("category_id", id))
	return nil
}

// DeleteBulk trashes ids and their children in one transaction.
func (s *categoryService) DeleteBulk(ctx context.Context, ids []uint64) (int64, error) {
	var deleted int64
	err := s.repo.Transaction(ctx, func(tx CategoryRepository) error {
		n, err := tx.Delete(ctx, ids)
		deleted = n
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete categories: %w", err)
	}
	s.log.Info("categories deleted", zap.Int("requested", len(ids)), zap.Int64("deleted", deleted))
	return deleted, nil
}

// CreateBulk creates items in order. One failing item rolls back the batch.
func (s *categoryService) CreateBulk(ctx context.Context, items []Input) ([]*dbmysql.Category, error) {
	ids := make([]uint64, 0, len(items))
	err := s.repo.Transaction(ctx, func(tx CategoryRepository) error {
		ids = ids[:0]
		for i, in := range items {
			c, err := s.create(ctx, tx, in)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			ids = append(ids, c.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByIDs(ctx, ids)
}

// UpdateBulk applies the same patch to every live id. Unknown ids are
// skipped. A name is slugged per category, so each gets its own suffix.
func (s *categoryService) UpdateBulk(ctx context.Context, ids []uint64, in Input) ([]*dbmysql.Category, error) {
	updated := make([]uint64, 0, len(ids))
	err := s.repo.Transaction(ctx, func(tx CategoryRepository) error {
		updated = updated[:0]
		for _, id := range ids {
			c, err := tx.FindByID(ctx, id)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if err := s.update(ctx, tx, c, in); err != nil {
				return fmt.Errorf("category %d: %w", id, err)
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

// Reorder numbers roots from 1 in the given order, and the children of each
// root from 1 as well.
func (s *categoryService) Reorder(ctx context.Context, tree []ReorderNode) ([]*dbmysql.Category, error) {
	roots := make([]uint64, 0, len(tree))
	err := s.repo.Transaction(ctx, func(tx CategoryRepository) error {
		roots = roots[:0]
		for i, node := range tree {
			if err := tx.UpdateOrder(ctx, node.ID, i+1); err != nil {
				return fmt.Errorf("category %d: %w", node.ID, err)
			}
			for j, child := range node.Children {
				if err := tx.UpdateOrder(ctx, child.ID, j+1); err != nil {
					return fmt.Errorf("category %d: %w", child.ID, err)
				}
			}
			roots = append(roots, node.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByIDs(ctx, roots)
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
