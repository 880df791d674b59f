package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"
)

// 错误响应统一使用 {"detail": "..."}
func abortDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

func bindFailed(c *gin.Context, err error) {
	klog.V(6).Infof("[handler] 请求参数无效: path=%s, err=%v", c.Request.URL.Path, err)
	abortDetail(c, http.StatusUnprocessableEntity, err.Error())
}

func internalError(c *gin.Context, tag string, err error) {
	klog.Errorf("[%s] 内部错误: %v", tag, err)
	abortDetail(c, http.StatusInternalServerError, "Internal server error")
}

func success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
