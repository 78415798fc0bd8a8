package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/RigelNana/acervo/apperror"
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/pkg/metrics"
	"github.com/RigelNana/acervo/repository"
)

// DocumentService adds the owner-bound operations shared by books, papers and
// final projects.
type DocumentService[E any, D dto.EntityDTO[D]] interface {
	GenericService[E, D]
	Register(ctx context.Context, ownerID int64, d D) (D, error)
	UpdateOwned(ctx context.Context, actorID, id int64, d D) (D, error)
	DeleteOwned(ctx context.Context, actorID, id int64) error
	FindByName(ctx context.Context, name string) ([]D, error)
}

// Resource names a document type in messages and metric labels.
type Resource struct {
	Name   string // "book"
	Plural string // "books"
	Title  string // "Book"
	Label  string // metric label
}

type DocumentServiceImpl[E any, D dto.EntityDTO[D]] struct {
	*GenericServiceImpl[E, D]
	docs     repository.DocumentRepository[E]
	resource Resource
}

func NewDocumentService[E any, D dto.EntityDTO[D]](repo repository.DocumentRepository[E], mapper dto.Mapper[E, D], hooks Hooks[E], resource Resource) *DocumentServiceImpl[E, D] {
	return &DocumentServiceImpl[E, D]{
		GenericServiceImpl: NewGenericService[E, D](repo, mapper, hooks),
		docs:               repo,
		resource:           resource,
	}
}

// Register creates the document on behalf of ownerID.
func (s *DocumentServiceImpl[E, D]) Register(ctx context.Context, ownerID int64, d D) (D, error) {
	var zero D
	entity := s.Mapper().ToEntity(d)
	o, err := owned(entity)
	if err != nil {
		return zero, err
	}
	o.SetOwnerID(ownerID)

	out, err := s.save(ctx, entity, s.hooks.ValidateBeforeSave)
	if err != nil {
		return zero, err
	}
	metrics.DocumentsCreated.WithLabelValues(s.resource.Label).Inc()
	return out, nil
}

func (s *DocumentServiceImpl[E, D]) UpdateOwned(ctx context.Context, actorID, id int64, d D) (D, error) {
	entity, err := s.findForChange(ctx, id)
	if err != nil {
		var zero D
		return zero, err
	}
	return s.updateOwned(ctx, actorID, entity, d)
}

func (s *DocumentServiceImpl[E, D]) DeleteOwned(ctx context.Context, actorID, id int64) error {
	entity, err := s.findForChange(ctx, id)
	if err != nil {
		return err
	}
	return s.deleteOwned(ctx, actorID, entity)
}

// FindByName reports an empty result as a 404.
func (s *DocumentServiceImpl[E, D]) FindByName(ctx context.Context, name string) ([]D, error) {
	rows, err := s.docs.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperror.Business(http.StatusNotFound, "Error: No %s found with name [%s]", s.resource.Plural, name)
	}
	return s.responses(rows), nil
}

func (s *DocumentServiceImpl[E, D]) findForChange(ctx context.Context, id int64) (*E, error) {
	entity, err := s.Repository().FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Business(http.StatusNotFound, "Error: %s not found with id [%d]", s.resource.Title, id)
	}
	return entity, err
}

func (s *DocumentServiceImpl[E, D]) updateOwned(ctx context.Context, actorID int64, entity *E, d D) (D, error) {
	var zero D
	o, err := owned(entity)
	if err != nil {
		return zero, err
	}
	if err := AuthorizeOwner(actorID, o.GetOwnerID(), s.resource.Name, "update"); err != nil {
		return zero, err
	}
	s.Mapper().Merge(entity, d)
	return s.save(ctx, entity, s.hooks.ValidateBeforeUpdate)
}

func (s *DocumentServiceImpl[E, D]) deleteOwned(ctx context.Context, actorID int64, entity *E) error {
	o, err := owned(entity)
	if err != nil {
		return err
	}
	if err := AuthorizeOwner(actorID, o.GetOwnerID(), s.resource.Name, "delete"); err != nil {
		return err
	}
	if err := s.Repository().Delete(ctx, entity); err != nil {
		return err
	}
	metrics.DocumentsDeleted.WithLabelValues(s.resource.Label).Inc()
	return nil
}
