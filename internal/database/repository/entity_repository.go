package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mesa-app/mesa/internal/database/models"
)

// ListOptions pages through a table ordered by id
type ListOptions struct {
	Limit  int
	Offset int
}

const defaultListLimit = 50

// EntityRepository is the data access for catalog entities that carry no
// behavior beyond persistence
type EntityRepository[T models.Entity] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	FindBy(ctx context.Context, column string, value any) (*T, error)
	List(ctx context.Context, opts ListOptions) ([]T, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) (*CascadeReport, error)
}

type entityRepository[T models.Entity] struct {
	db      *gorm.DB
	cascade *CascadeDeleter
}

// NewEntityRepository creates a repository for the entity type T
func NewEntityRepository[T models.Entity](db *gorm.DB) EntityRepository[T] {
	return &entityRepository[T]{db: db, cascade: NewCascadeDeleter(db)}
}

func (r *entityRepository[T]) table() string {
	var zero T
	return zero.TableName()
}

func (r *entityRepository[T]) Create(ctx context.Context, entity *T) error {
	err := r.db.WithContext(ctx).Create(entity).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *entityRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindBy returns the first row whose column equals value. column must be a
// trusted identifier, never user input.
func (r *entityRepository[T]) FindBy(ctx context.Context, column string, value any) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(map[string]any{column: value}).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *entityRepository[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var entities []T
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(max(opts.Offset, 0)).
		Find(&entities).Error
	return entities, err
}

func (r *entityRepository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(r.table()).Count(&count).Error
	return count, err
}

// Delete removes the row and everything it owns
func (r *entityRepository[T]) Delete(ctx context.Context, id uint) (*CascadeReport, error) {
	report, err := r.cascade.Delete(ctx, r.table(), id)
	if err != nil {
		return nil, err
	}
	if report.Deleted[r.table()] == 0 {
		return nil, ErrRecordNotFound
	}
	return report, nil
}
