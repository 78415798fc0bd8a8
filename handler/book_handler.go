package handler

import (
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/models"
	"github.com/RigelNana/acervo/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// BookHandler addresses books by ISBN on the edit, delete and lookup routes.
type BookHandler struct {
	*DocumentHandler[models.Book, dto.BookDTO]
	books service.BookService
}

func NewBookHandler(svc service.BookService, log logrus.FieldLogger) *BookHandler {
	return &BookHandler{
		DocumentHandler: NewDocumentHandler[models.Book, dto.BookDTO](svc, "Book", "Books", log),
		books:           svc,
	}
}

// EditByISBN PUT /v1/books/edit/:isbn
func (h *BookHandler) EditByISBN(c *gin.Context) {
	identity, found := caller(c)
	if !found {
		return
	}
	var req dto.BookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}
	res, err := h.books.UpdateByISBN(c.Request.Context(), identity.UserID, c.Param("isbn"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, "Success: Book updated successfully.", res)
}

// DeleteByISBN DELETE /v1/books/delete/:isbn
func (h *BookHandler) DeleteByISBN(c *gin.Context) {
	identity, found := caller(c)
	if !found {
		return
	}
	isbn := c.Param("isbn")
	if err := h.books.DeleteByISBN(c.Request.Context(), identity.UserID, isbn); err != nil {
		_ = c.Error(err)
		return
	}
	h.log.WithFields(logrus.Fields{"resource": "Book", "isbn": isbn}).Info("document removed")
	ok(c, "Success: Book has been successfully removed.", nil)
}

// FindByISBN GET /v1/books/find-by-isbn/:isbn
func (h *BookHandler) FindByISBN(c *gin.Context) {
	res, err := h.books.FindByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, "Success: Book retrieved successfully.", res)
}

// RegisterRoutes mounts the book routes on rg.
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Create)
	rg.PUT("/edit/:isbn", h.EditByISBN)
	rg.DELETE("/delete/:isbn", h.DeleteByISBN)
	rg.GET("/find-by-isbn/:isbn", h.FindByISBN)
	rg.GET("/find-by-name/:name", h.FindByName)
	rg.GET("/find-all", h.FindAll)
	h.GenericHandler.RegisterRoutes(rg)
}
