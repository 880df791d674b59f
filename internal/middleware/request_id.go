package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// RequestIDHeader 请求 ID 头
const RequestIDHeader = "X-Request-ID"

// RequestID 透传或生成请求 ID，并记录请求耗时
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)

		c.Next()

		klog.V(6).Infof("[request] %s", accessLine(id, c, time.Since(start)))
	}
}

func accessLine(id string, c *gin.Context, elapsed time.Duration) string {
	return fmt.Sprintf("id=%s, method=%s, path=%s, status=%d, elapsed=%s",
		id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), elapsed)
}
