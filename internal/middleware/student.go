package middleware

import (
	"physics_practice_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// StudentMiddleware 从网关写入的请求头中读取学生标识，缺失时返回 401
func StudentMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		studentID := strings.TrimSpace(c.GetHeader(util.StudentIDHeader))
		if studentID == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		util.SetStudentID(c, studentID)
		c.Next()
	}
}
