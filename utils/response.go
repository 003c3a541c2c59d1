package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmhub/model"
)

// ErrorBody 错误响应体（只含一个 message 字段）
type ErrorBody struct {
	Message string `json:"message"`
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Message: message})
}

// 常用错误响应快捷方法

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

// InternalServerError 500 服务器错误
func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, message)
}

// HandleError 按领域错误类型映射 HTTP 状态码（校验→400，不存在→404，其余→500）
func HandleError(c *gin.Context, err error) {
	switch {
	case model.IsValidation(err):
		BadRequest(c, err.Error())
	case model.IsNotFound(err):
		NotFound(c, err.Error())
	default:
		InternalServerError(c, err.Error())
	}
}
