package repository

import (
	"context"

	"github.com/RigelNana/acervo/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	DocumentRepository[models.Book]
	FindByISBN(ctx context.Context, isbn string) (*models.Book, error)
}

type BookRepositoryImpl struct {
	*DocumentRepositoryImpl[models.Book]
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &BookRepositoryImpl{
		DocumentRepositoryImpl: NewDocumentRepository[models.Book](db, map[string]string{
			"publicationYear": "publication_year",
			"publisher":       "publisher",
			"isbn":            "isbn",
		}),
	}
}

func (r *BookRepositoryImpl) FindByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	var book models.Book
	err := r.active(ctx).Where("isbn = ?", isbn).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}
