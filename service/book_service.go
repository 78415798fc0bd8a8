package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/RigelNana/acervo/apperror"
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/models"
	"github.com/RigelNana/acervo/repository"
)

type BookService interface {
	DocumentService[models.Book, dto.BookDTO]
	FindByISBN(ctx context.Context, isbn string) (dto.BookDTO, error)
	UpdateByISBN(ctx context.Context, actorID int64, isbn string, d dto.BookDTO) (dto.BookDTO, error)
	DeleteByISBN(ctx context.Context, actorID int64, isbn string) error
}

type BookServiceImpl struct {
	*DocumentServiceImpl[models.Book, dto.BookDTO]
	books repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	s := &BookServiceImpl{books: repo}
	s.DocumentServiceImpl = NewDocumentService[models.Book, dto.BookDTO](repo, dto.BookMapper{}, s,
		Resource{Name: "book", Plural: "books", Title: "Book", Label: "book"})
	return s
}

func (s *BookServiceImpl) FindByISBN(ctx context.Context, isbn string) (dto.BookDTO, error) {
	book, err := s.findByISBN(ctx, isbn)
	if err != nil {
		return dto.BookDTO{}, err
	}
	return s.response(book), nil
}

func (s *BookServiceImpl) UpdateByISBN(ctx context.Context, actorID int64, isbn string, d dto.BookDTO) (dto.BookDTO, error) {
	book, err := s.findByISBN(ctx, isbn)
	if err != nil {
		return dto.BookDTO{}, err
	}
	return s.updateOwned(ctx, actorID, book, d)
}

func (s *BookServiceImpl) DeleteByISBN(ctx context.Context, actorID int64, isbn string) error {
	book, err := s.findByISBN(ctx, isbn)
	if err != nil {
		return err
	}
	return s.deleteOwned(ctx, actorID, book)
}

func (s *BookServiceImpl) ValidateBeforeSave(ctx context.Context, book *models.Book) error {
	return s.validateISBN(ctx, book.ISBN, book.ID)
}

func (s *BookServiceImpl) ValidateBeforeUpdate(ctx context.Context, book *models.Book) error {
	return s.validateISBN(ctx, book.ISBN, book.ID)
}

func (s *BookServiceImpl) findByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	book, err := s.books.FindByISBN(ctx, isbn)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Business(http.StatusNotFound, "Error: Book not found with ISBN [%s]", isbn)
	}
	return book, err
}

// validateISBN rejects an empty ISBN or one held by another active book.
func (s *BookServiceImpl) validateISBN(ctx context.Context, isbn string, id int64) error {
	if strings.TrimSpace(isbn) == "" {
		return apperror.Business(http.StatusBadRequest, "Error: ISBN must not be empty.")
	}
	other, err := s.books.FindByISBN(ctx, isbn)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.ID != id {
		return apperror.Business(http.StatusBadRequest, "Invalid ISBN: %s. A book with this ISBN is already registered.", isbn)
	}
	return nil
}
