package gin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RigelNana/acervo/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddlewareRecordsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PrometheusMiddleware("acervo-mw"))
	r.GET("/v1/books/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.RequestsTotal.WithLabelValues("acervo-mw", "GET /v1/books/:id", "200")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/books/12", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("acervo-mw", "GET unmatched", "404")))
}
