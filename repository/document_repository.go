package repository

import (
	"context"

	"gorm.io/gorm"
)

// DocumentRepository adds the title search shared by every document table.
type DocumentRepository[T any] interface {
	BaseRepository[T]
	FindByName(ctx context.Context, name string) ([]*T, error)
}

type DocumentRepositoryImpl[T any] struct {
	*BaseRepositoryImpl[T]
}

// documentSortable lists the page-request properties common to documents.
var documentSortable = map[string]string{
	"id":            "id",
	"title":         "title",
	"author":        "author",
	"knowledgeArea": "knowledge_area",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

func NewDocumentRepository[T any](db *gorm.DB, extraSortable map[string]string) *DocumentRepositoryImpl[T] {
	sortable := make(map[string]string, len(documentSortable)+len(extraSortable))
	for k, v := range documentSortable {
		sortable[k] = v
	}
	for k, v := range extraSortable {
		sortable[k] = v
	}
	return &DocumentRepositoryImpl[T]{BaseRepositoryImpl: NewBaseRepository[T](db, sortable)}
}

func (r *DocumentRepositoryImpl[T]) FindByName(ctx context.Context, name string) ([]*T, error) {
	var entities []*T
	err := r.active(ctx).Where("title = ?", name).Order("id").Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}
