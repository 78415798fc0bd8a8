package handler

import (
	"net/http"
	"strconv"

	"github.com/RigelNana/acervo/apperror"
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/middleware"
	"github.com/RigelNana/acervo/repository"
	"github.com/RigelNana/acervo/service"

	"github.com/gin-gonic/gin"
)

func ok(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.Success(message, data))
}

func created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.Success(message, data))
}

// caller returns the identity stored by the auth middleware. Routes behind
// JWTAuth always have one.
func caller(c *gin.Context) (service.Identity, bool) {
	identity, found := middleware.CurrentIdentity(c)
	if !found {
		_ = c.Error(apperror.Unauthorized("missing caller identity", nil))
	}
	return identity, found
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(apperror.Business(http.StatusBadRequest, "Error: Invalid id [%s]", raw))
		return 0, false
	}
	return id, true
}

// parsePageable reads page (0-based), size and repeated sort parameters.
func parsePageable(c *gin.Context) (repository.Pageable, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		_ = c.Error(apperror.Business(http.StatusBadRequest, "Error: Invalid page [%s]", c.Query("page")))
		return repository.Pageable{}, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(repository.DefaultPageSize)))
	if err != nil || size <= 0 {
		_ = c.Error(apperror.Business(http.StatusBadRequest, "Error: Invalid size [%s]", c.Query("size")))
		return repository.Pageable{}, false
	}
	pageable := repository.Pageable{
		Page: page,
		Size: size,
		Sort: repository.ParseSort(c.QueryArray("sort")),
	}.Normalize()
	if pageable.Page != page {
		_ = c.Error(apperror.Business(http.StatusBadRequest, "Error: Invalid page [%s]", c.Query("page")))
		return repository.Pageable{}, false
	}
	return pageable, true
}
