package handler

import (
	"Vega_Tube/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 定义了标准的API错误响应结构
type ErrorResponse struct {
	Error string `json:"error"`
}

// sendErrorResponse 是一个辅助函数，用于发送标准格式的错误响应
func sendErrorResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Error: message})
}

// sendServiceError 把service层的哨兵错误翻译成状态码。
// 没认出来的错误一律按500处理，不把内部细节漏给用户
func sendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrInvalidTargetType),
		errors.Is(err, service.ErrSelfSubscribe):
		sendErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		sendErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		sendErrorResponse(c, http.StatusInternalServerError, "服务器内部错误")
	}
}

// currentUserID 从认证中间件写入的context里取当前用户ID。
// jwt.MapClaims里的数字会被解析成float64，这里统一断言转回uint64
func currentUserID(c *gin.Context) (uint64, bool) {
	userIDFloat, exists := c.Get("userID")
	if !exists {
		// 理论上中间件会拦截，但防御性编程是好习惯
		sendErrorResponse(c, http.StatusUnauthorized, "用户未认证")
		return 0, false
	}
	return uint64(userIDFloat.(float64)), true
}
