package util

import "github.com/gin-gonic/gin"

const studentContextKey = "studentId"

func SetStudentID(c *gin.Context, studentID string) {
	c.Set(studentContextKey, studentID)
}

// GetStudentID 未经过 StudentMiddleware 时返回空字符串
func GetStudentID(c *gin.Context) string {
	return c.GetString(studentContextKey)
}
