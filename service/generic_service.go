package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/RigelNana/acervo/apperror"
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/repository"
)

// Hooks run before an entity is written. Concrete services implement them to
// enforce uniqueness rules.
type Hooks[E any] interface {
	ValidateBeforeSave(ctx context.Context, entity *E) error
	ValidateBeforeUpdate(ctx context.Context, entity *E) error
}

type noHooks[E any] struct{}

func (noHooks[E]) ValidateBeforeSave(context.Context, *E) error   { return nil }
func (noHooks[E]) ValidateBeforeUpdate(context.Context, *E) error { return nil }

// GenericService 定义所有实体共用的 CRUD 操作
type GenericService[E any, D dto.EntityDTO[D]] interface {
	FindAll(ctx context.Context, page repository.Pageable) (dto.Page[D], error)
	FindByID(ctx context.Context, id int64) (D, error)
	Create(ctx context.Context, d D) (D, error)
	Update(ctx context.Context, id int64, d D) (D, error)
	DeleteByID(ctx context.Context, id int64) error
}

type GenericServiceImpl[E any, D dto.EntityDTO[D]] struct {
	repo   repository.BaseRepository[E]
	mapper dto.Mapper[E, D]
	hooks  Hooks[E]
}

// NewGenericService wires the shared CRUD flow. A nil hooks runs no checks.
func NewGenericService[E any, D dto.EntityDTO[D]](repo repository.BaseRepository[E], mapper dto.Mapper[E, D], hooks Hooks[E]) *GenericServiceImpl[E, D] {
	if hooks == nil {
		hooks = noHooks[E]{}
	}
	return &GenericServiceImpl[E, D]{repo: repo, mapper: mapper, hooks: hooks}
}

// Repository and Mapper are what the concrete services build their own
// operations on.
func (s *GenericServiceImpl[E, D]) Repository() repository.BaseRepository[E] {
	return s.repo
}

func (s *GenericServiceImpl[E, D]) Mapper() dto.Mapper[E, D] {
	return s.mapper
}

func (s *GenericServiceImpl[E, D]) FindAll(ctx context.Context, page repository.Pageable) (dto.Page[D], error) {
	page = page.Normalize()
	rows, total, err := s.repo.FindAll(ctx, page)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownSortProperty) {
			return dto.Page[D]{}, apperror.Business(http.StatusBadRequest, "Error: %v", err)
		}
		return dto.Page[D]{}, err
	}
	return dto.NewPage(s.responses(rows), page.Page, page.Size, total), nil
}

func (s *GenericServiceImpl[E, D]) FindByID(ctx context.Context, id int64) (D, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var zero D
		if errors.Is(err, repository.ErrNotFound) {
			return zero, apperror.NotFound("Id not found: %d", id)
		}
		return zero, err
	}
	return s.response(entity), nil
}

func (s *GenericServiceImpl[E, D]) Create(ctx context.Context, d D) (D, error) {
	return s.save(ctx, s.mapper.ToEntity(d), s.hooks.ValidateBeforeSave)
}

// Update merges the non-nil fields of d onto the stored row.
func (s *GenericServiceImpl[E, D]) Update(ctx context.Context, id int64, d D) (D, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var zero D
		if errors.Is(err, repository.ErrNotFound) {
			return zero, apperror.NotFound("Id not found: %d", id)
		}
		return zero, err
	}
	s.mapper.Merge(entity, d)
	return s.save(ctx, entity, s.hooks.ValidateBeforeUpdate)
}

func (s *GenericServiceImpl[E, D]) DeleteByID(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *GenericServiceImpl[E, D]) save(ctx context.Context, entity *E, check func(context.Context, *E) error) (D, error) {
	var zero D
	if err := check(ctx, entity); err != nil {
		return zero, err
	}
	if err := s.repo.Save(ctx, entity); err != nil {
		return zero, err
	}
	return s.response(entity), nil
}

func (s *GenericServiceImpl[E, D]) response(entity *E) D {
	return s.mapper.ToDTO(entity).ToResponse()
}

func (s *GenericServiceImpl[E, D]) responses(entities []*E) []D {
	out := make([]D, 0, len(entities))
	for _, e := range entities {
		out = append(out, s.response(e))
	}
	return out
}
