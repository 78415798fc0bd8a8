package handler

import (
	"context"

	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/repository"

	"github.com/gin-gonic/gin"
)

// Reader is the read side of a GenericService.
type Reader[D any] interface {
	FindAll(ctx context.Context, page repository.Pageable) (dto.Page[D], error)
	FindByID(ctx context.Context, id int64) (D, error)
}

// GenericHandler serves GET /<resource> and GET /<resource>/:id.
type GenericHandler[D any] struct {
	svc Reader[D]
}

func NewGenericHandler[D any](svc Reader[D]) *GenericHandler[D] {
	return &GenericHandler[D]{svc: svc}
}

// List GET /v1/<resource>?page=0&size=20&sort=id,desc
func (h *GenericHandler[D]) List(c *gin.Context) {
	page, valid := parsePageable(c)
	if !valid {
		return
	}
	res, err := h.svc.FindAll(c.Request.Context(), page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, "Success: Entity located successfully.", res)
}

// Get GET /v1/<resource>/:id
func (h *GenericHandler[D]) Get(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}
	res, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, "Success: Entity has been successfully obtained.", res)
}

// RegisterRoutes mounts the generic read routes on rg.
func (h *GenericHandler[D]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
}
