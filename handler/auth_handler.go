package handler

import (
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Authenticate 校验登录名与密码并签发 token
// POST /v1/auth/authenticate
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}
	res, err := h.auth.Authenticate(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, "Authentication completed successfully", res)
}
