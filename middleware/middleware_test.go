package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RigelNana/acervo/apperror"
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/models"
	"github.com/RigelNana/acervo/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelopeBody struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data"`
	Error   dto.ErrorDTO `json:"error"`
}

func newEngine(log logrus.FieldLogger, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(log), Recovery(log), ErrorHandler(log))
	for _, h := range handlers {
		r.Use(h)
	}
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelopeBody {
	t.Helper()
	var body envelopeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrorHandlerMapping(t *testing.T) {
	invalid := models.Validator().Struct(&models.User{Login: "ana", Password: "x", Email: "not-an-email"})
	require.Error(t, invalid)

	tests := []struct {
		name    string
		err     error
		status  int
		title   string
		message string
	}{
		{"not found", apperror.NotFound("Id not found: %d", 5), 404, "Resource not found", "Id not found: 5"},
		{"business", apperror.Business(http.StatusForbidden, "Error: You are not authorized to update this book."), 403, "Business error", "Error: You are not authorized to update this book."},
		{"credentials", apperror.InvalidCredentials("Invalid username or password"), 401, "Invalid credentials", "Invalid username or password"},
		{"conversion", apperror.Conversion("cannot convert", errors.New("x")), 500, conversionProblem, "cannot convert"},
		{"validator", fmt.Errorf("save: %w", invalid), 400, saveProblem, "[email: must be a well-formed email address]"},
		{"unique violation", &pgconn.PgError{Code: "23505", Detail: "Key (isbn)=(1) already exists."}, 400, saveProblem, "Key (isbn)=(1) already exists."},
		{"record not found", gorm.ErrRecordNotFound, 404, "Resource not found", "Resource not found"},
		{"unclassified", errors.New("dial tcp: refused"), 500, unexpectedProblem, unexpectedProblem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, _ := test.NewNullLogger()
			r := newEngine(log)
			r.GET("/boom", func(c *gin.Context) { _ = c.Error(tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

			assert.Equal(t, tt.status, w.Code)
			body := decode(t, w)
			assert.False(t, body.Success)
			assert.Nil(t, body.Data)
			assert.Equal(t, "Erro: "+tt.message, body.Message)
			assert.Equal(t, tt.status, body.Error.Status)
			assert.Equal(t, tt.title, body.Error.Error)
			assert.Equal(t, tt.message, body.Error.Message)
			assert.Equal(t, "/boom", body.Error.Path)
		})
	}
}

func TestUnclassifiedErrorIsLoggedNotReturned(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := newEngine(log)
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(errors.New("password=hunter2")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.NotContains(t, w.Body.String(), "hunter2")
	var logged bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel && e.Data[logrus.ErrorKey] != nil {
			logged = true
		}
	}
	assert.True(t, logged)
}

func TestConversionErrorLogsKind(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := newEngine(log)
	r.GET("/convert", func(c *gin.Context) {
		_ = c.Error(apperror.Conversion("cannot convert", errors.New("bad type")))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/convert", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var kinds []any
	for _, e := range hook.AllEntries() {
		if k, ok := e.Data["kind"]; ok {
			kinds = append(kinds, k)
		}
	}
	assert.Equal(t, []any{"conversion"}, kinds)
}

func TestMalformedJSON(t *testing.T) {
	log, _ := test.NewNullLogger()
	r := newEngine(log)
	r.POST("/in", func(c *gin.Context) {
		var req dto.AuthRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(err)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/in", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/in", strings.NewReader(`{"login":"ana"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Error.Message, "password: must not be empty")
}

func TestRecoveryRendersEnvelope(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := newEngine(log)
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Erro: "+unexpectedProblem, body.Message)
	assert.NotContains(t, w.Body.String(), "kaboom")
	require.NotEmpty(t, hook.AllEntries())
}

func TestRequestLoggerEchoesRequestID(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := newEngine(log)
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-123", w.Body.String())
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "req-123", entry.Data["request_id"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

type identifierFunc func(ctx context.Context, token string) (service.Identity, error)

func (f identifierFunc) Identify(ctx context.Context, token string) (service.Identity, error) {
	return f(ctx, token)
}

func TestJWTAuth(t *testing.T) {
	identifier := identifierFunc(func(_ context.Context, token string) (service.Identity, error) {
		switch token {
		case "good":
			return service.Identity{UserID: 7, Login: "ana"}, nil
		case "stale":
			return service.Identity{}, apperror.Unauthorized("Invalid or expired token", nil)
		default:
			return service.Identity{}, errors.New("db down")
		}
	})
	log, _ := test.NewNullLogger()
	r := newEngine(log, JWTAuth(identifier))
	r.GET("/me", func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, identity)
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "Bearer  ", http.StatusUnauthorized},
		{"stale token", "Bearer stale", http.StatusUnauthorized},
		{"store failure", "Bearer other", http.StatusInternalServerError},
		{"valid", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestJWTAuthStoreFailureIsLogged(t *testing.T) {
	identifier := identifierFunc(func(context.Context, string) (service.Identity, error) {
		return service.Identity{}, errors.New("dial tcp: connection refused")
	})
	log, hook := test.NewNullLogger()
	r := newEngine(log, JWTAuth(identifier))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Erro: An unexpected problem occurred.", body.Message)
	assert.NotContains(t, w.Body.String(), "connection refused")

	var logged bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel && e.Data[logrus.ErrorKey] != nil {
			logged = true
			assert.Contains(t, e.Data[logrus.ErrorKey].(error).Error(), "connection refused")
		}
	}
	assert.True(t, logged)
}
