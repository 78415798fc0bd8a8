package handler

import (
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	*GenericHandler[dto.UserDTO]
	users service.UserService
	log   logrus.FieldLogger
}

func NewUserHandler(users service.UserService, log logrus.FieldLogger) *UserHandler {
	return &UserHandler{GenericHandler: NewGenericHandler[dto.UserDTO](users), users: users, log: log}
}

// Create 注册新用户（公开）
// POST /v1/users/register
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}
	res, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.log.WithField("user_id", res.ID).Info("user registered")
	created(c, "Success: User created successfully.", res)
}

// Edit 修改当前用户
// PUT /v1/users/edit
func (h *UserHandler) Edit(c *gin.Context) {
	identity, found := caller(c)
	if !found {
		return
	}
	var req dto.UserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}
	res, err := h.users.Update(c.Request.Context(), identity.UserID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, "Success: User updated successfully.", res)
}

// Delete 逻辑删除当前用户
// DELETE /v1/users/delete
func (h *UserHandler) Delete(c *gin.Context) {
	identity, found := caller(c)
	if !found {
		return
	}
	if err := h.users.DeleteByID(c.Request.Context(), identity.UserID); err != nil {
		_ = c.Error(err)
		return
	}
	h.log.WithField("user_id", identity.UserID).Info("user removed")
	ok(c, "Success: User has been successfully removed.", nil)
}

// Find 获取当前用户
// GET /v1/users/find
func (h *UserHandler) Find(c *gin.Context) {
	identity, found := caller(c)
	if !found {
		return
	}
	res, err := h.users.FindByLogin(c.Request.Context(), identity.Login)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, "Success: User retrieved successfully.", res)
}

// FindAll 分页获取用户列表
// GET /v1/users/find-all?page=0&size=20
func (h *UserHandler) FindAll(c *gin.Context) {
	page, valid := parsePageable(c)
	if !valid {
		return
	}
	res, err := h.users.FindAll(c.Request.Context(), page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, "Success: users retrieved successfully", res)
}

// RegisterPublic mounts the routes reachable without a token.
func (h *UserHandler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/register", h.Create)
}

// RegisterRoutes mounts the authenticated user routes.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/edit", h.Edit)
	rg.DELETE("/delete", h.Delete)
	rg.GET("/find", h.Find)
	rg.GET("/find-all", h.FindAll)
	h.GenericHandler.RegisterRoutes(rg)
}
