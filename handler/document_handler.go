package handler

import (
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DocumentHandler serves the routes shared by every document resource.
// Paper and final project are addressed by id.
type DocumentHandler[E any, D dto.EntityDTO[D]] struct {
	*GenericHandler[D]
	svc    service.DocumentService[E, D]
	label  string
	plural string
	log    logrus.FieldLogger
}

// NewDocumentHandler builds the handler; label and plural name the resource
// in response messages.
func NewDocumentHandler[E any, D dto.EntityDTO[D]](svc service.DocumentService[E, D], label, plural string, log logrus.FieldLogger) *DocumentHandler[E, D] {
	return &DocumentHandler[E, D]{
		GenericHandler: NewGenericHandler[D](svc),
		svc:            svc,
		label:          label,
		plural:         plural,
		log:            log,
	}
}

// Create POST /register
func (h *DocumentHandler[E, D]) Create(c *gin.Context) {
	identity, found := caller(c)
	if !found {
		return
	}
	var req D
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}
	res, err := h.svc.Register(c.Request.Context(), identity.UserID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.log.WithFields(logrus.Fields{"resource": h.label, "owner_id": identity.UserID}).Info("document registered")
	created(c, "Success: "+h.label+" created successfully.", res)
}

// Edit PUT /edit/:id
func (h *DocumentHandler[E, D]) Edit(c *gin.Context) {
	identity, found := caller(c)
	if !found {
		return
	}
	id, valid := parseID(c, "id")
	if !valid {
		return
	}
	var req D
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}
	res, err := h.svc.UpdateOwned(c.Request.Context(), identity.UserID, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, "Success: "+h.label+" updated successfully.", res)
}

// Delete DELETE /delete/:id
func (h *DocumentHandler[E, D]) Delete(c *gin.Context) {
	identity, found := caller(c)
	if !found {
		return
	}
	id, valid := parseID(c, "id")
	if !valid {
		return
	}
	if err := h.svc.DeleteOwned(c.Request.Context(), identity.UserID, id); err != nil {
		_ = c.Error(err)
		return
	}
	h.log.WithFields(logrus.Fields{"resource": h.label, "id": id}).Info("document removed")
	ok(c, "Success: "+h.label+" has been successfully removed.", nil)
}

// FindByName GET /find-by-name/:name
func (h *DocumentHandler[E, D]) FindByName(c *gin.Context) {
	res, err := h.svc.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, "Success: "+h.plural+" retrieved successfully.", res)
}

// FindAll GET /find-all
func (h *DocumentHandler[E, D]) FindAll(c *gin.Context) {
	page, valid := parsePageable(c)
	if !valid {
		return
	}
	res, err := h.svc.FindAll(c.Request.Context(), page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, "Success: "+h.plural+" retrieved successfully.", res)
}

// FindByID GET /find-by-id/:id
func (h *DocumentHandler[E, D]) FindByID(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}
	res, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, "Success: "+h.label+" retrieved successfully.", res)
}

// RegisterRoutes mounts the id-addressed document routes on rg.
func (h *DocumentHandler[E, D]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Create)
	rg.PUT("/edit/:id", h.Edit)
	rg.DELETE("/delete/:id", h.Delete)
	rg.GET("/find-by-name/:name", h.FindByName)
	rg.GET("/find-all", h.FindAll)
	rg.GET("/find-by-id/:id", h.FindByID)
	h.GenericHandler.RegisterRoutes(rg)
}
