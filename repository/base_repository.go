package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/RigelNana/acervo/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned by single-row finders when no active row matches.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrUnknownSortProperty is returned when a page request sorts by a field the
// repository does not expose.
var ErrUnknownSortProperty = errors.New("unknown sort property")

// BaseRepository 定义所有实体共用的数据访问接口。
// 所有查询只作用于 active = true 的记录；删除为逻辑删除。
type BaseRepository[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
	FindByIDUnscoped(ctx context.Context, id int64) (*T, error)
	FindAll(ctx context.Context, page Pageable) ([]*T, int64, error)
	Save(ctx context.Context, entity *T) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
	Delete(ctx context.Context, entity *T) error
	DeleteAll(ctx context.Context, entities []*T) error
}

type BaseRepositoryImpl[T any] struct {
	db       *gorm.DB
	sortable map[string]string
}

// NewBaseRepository builds a repository for T. sortable maps the property
// names accepted in page requests to column names.
func NewBaseRepository[T any](db *gorm.DB, sortable map[string]string) *BaseRepositoryImpl[T] {
	return &BaseRepositoryImpl[T]{
		db:       db,
		sortable: sortable,
	}
}

// active is the scoped handle every default query starts from.
func (r *BaseRepositoryImpl[T]) active(ctx context.Context) *gorm.DB {
	var entity T
	return r.db.WithContext(ctx).Model(&entity).Where("active = ?", true)
}

func (r *BaseRepositoryImpl[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.active(ctx).First(&entity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindByIDUnscoped ignores the active filter, so soft-deleted rows are visible.
func (r *BaseRepositoryImpl[T]) FindByIDUnscoped(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepositoryImpl[T]) FindAll(ctx context.Context, page Pageable) ([]*T, int64, error) {
	page = page.Normalize()

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	orders, err := page.Columns(r.sortable)
	if err != nil {
		return nil, 0, err
	}
	query := r.active(ctx)
	for _, order := range orders {
		query = query.Order(order)
	}

	var entities []*T
	err = query.Limit(page.Size).Offset(page.Offset()).Find(&entities).Error
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// Save inserts entities without an id and fully updates the others.
func (r *BaseRepositoryImpl[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *BaseRepositoryImpl[T]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.active(ctx).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *BaseRepositoryImpl[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.active(ctx).Count(&count).Error
	return count, err
}

// DeleteByID marks the row inactive. Missing ids are a no-op.
func (r *BaseRepositoryImpl[T]) DeleteByID(ctx context.Context, id int64) error {
	entity, err := r.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.Delete(ctx, entity)
}

func (r *BaseRepositoryImpl[T]) Delete(ctx context.Context, entity *T) error {
	e, err := asEntity(entity)
	if err != nil {
		return err
	}
	e.SetActive(false)
	return r.Save(ctx, entity)
}

// DeleteAll soft-deletes each element through DeleteByID.
func (r *BaseRepositoryImpl[T]) DeleteAll(ctx context.Context, entities []*T) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := &BaseRepositoryImpl[T]{db: tx, sortable: r.sortable}
		for _, entity := range entities {
			e, err := asEntity(entity)
			if err != nil {
				return err
			}
			if err := scoped.DeleteByID(ctx, e.GetID()); err != nil {
				return err
			}
		}
		return nil
	})
}

func asEntity[T any](entity *T) (models.Entity, error) {
	e, ok := any(entity).(models.Entity)
	if !ok {
		return nil, fmt.Errorf("repository: %T does not embed models.Base", entity)
	}
	return e, nil
}

// orderBy quotes the column so whitelisted names are never spliced into SQL.
func orderBy(column string, desc bool) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}
}
