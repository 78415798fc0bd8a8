package router

import (
	"context"
	"net/http"
	"time"

	"github.com/RigelNana/acervo/apperror"
	"github.com/RigelNana/acervo/docs"
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/handler"
	"github.com/RigelNana/acervo/middleware"
	"github.com/RigelNana/acervo/models"
	ginmetrics "github.com/RigelNana/acervo/pkg/metrics/gin"
	"github.com/RigelNana/acervo/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const ServiceName = "acervo"

// Deps are the services the route table is built from. Health is called by
// /healthz and may be nil.
type Deps struct {
	Log           logrus.FieldLogger
	Auth          service.AuthService
	Users         service.UserService
	Books         service.BookService
	Papers        service.PaperService
	FinalProjects service.FinalProjectService
	Health        func(ctx context.Context) error
}

func Setup(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestLogger(d.Log),
		middleware.Recovery(d.Log),
		ginmetrics.PrometheusMiddleware(ServiceName),
		middleware.ErrorHandler(d.Log),
	)
	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("No route for %s %s", c.Request.Method, c.Request.URL.Path))
	})

	r.GET("/healthz", health(d.Health))
	docs.RegisterRoutes(r)

	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users, d.Log)
	bookHandler := handler.NewBookHandler(d.Books, d.Log)
	paperHandler := handler.NewDocumentHandler[models.Paper, dto.PaperDTO](d.Papers, "Paper", "Papers", d.Log)
	finalProjectHandler := handler.NewDocumentHandler[models.FinalProject, dto.FinalProjectDTO](d.FinalProjects, "Final Project", "Final Projects", d.Log)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/authenticate", authHandler.Authenticate)
		userHandler.RegisterPublic(v1.Group("/users"))
	}

	secured := v1.Group("", middleware.JWTAuth(d.Auth))
	{
		userHandler.RegisterRoutes(secured.Group("/users"))
		bookHandler.RegisterRoutes(secured.Group("/books"))
		paperHandler.RegisterRoutes(secured.Group("/paper"))
		finalProjectHandler.RegisterRoutes(secured.Group("/finalProject"))
	}
	return r
}

func health(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				_ = c.Error(apperror.Business(http.StatusServiceUnavailable, "Database unavailable"))
				return
			}
		}
		c.JSON(http.StatusOK, dto.Success("ok", gin.H{"database": "up"}))
	}
}
