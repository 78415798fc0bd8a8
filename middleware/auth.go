package middleware

import (
	"context"
	"strings"

	"github.com/RigelNana/acervo/apperror"
	"github.com/RigelNana/acervo/service"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Identifier resolves a bearer token to the calling user.
type Identifier interface {
	Identify(ctx context.Context, token string) (service.Identity, error)
}

// JWTAuth 中间件：提取 Bearer token -> 解析身份 -> 注入 identity
func JWTAuth(identifier Identifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "missing Authorization header", nil)
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			unauthorized(c, "empty bearer token", nil)
			return
		}
		identity, err := identifier.Identify(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			// token failures arrive as Unauthorized; store failures stay 500
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the caller stored by JWTAuth.
func CurrentIdentity(c *gin.Context) (service.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return service.Identity{}, false
	}
	identity, ok := v.(service.Identity)
	return identity, ok
}

func unauthorized(c *gin.Context, msg string, err error) {
	_ = c.Error(apperror.Unauthorized(msg, err))
	c.Abort()
}
