package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"filmhub/utils"
)

// ErrorHandlerMiddleware 统一错误处理中间件
// 业务错误由各处理器经 utils.HandleError 直接映射，这里只负责捕获 panic
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				// 记录 panic 信息
				log.Printf("[ERROR] Panic recovered: %v", err)

				// 返回统一错误响应
				if !c.Writer.Written() {
					utils.InternalServerError(c, "internal server error")
				}

				// 终止后续处理
				c.Abort()
			}
		}()

		c.Next()
	}
}
