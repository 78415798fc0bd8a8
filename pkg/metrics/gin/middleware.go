package gin

import (
	"strconv"
	"time"

	"github.com/RigelNana/acervo/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// PrometheusMiddleware 为 Gin 添加 Prometheus 指标
func PrometheusMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// 继续处理请求
		c.Next()

		// 未匹配路由统一记为 unmatched，避免标签基数失控
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method + " " + route

		metrics.RecordRequest(serviceName, method, statusCode, time.Since(start))
	}
}
