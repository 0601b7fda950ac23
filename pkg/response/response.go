package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构，code 为 0 表示成功
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

// SuccessMsg 带提示语的成功响应
func SuccessMsg(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  msg,
		Data: data,
	})
}

func Fail(c *gin.Context, code int, msg string) {
	status := code
	if status < 400 || status > 599 {
		status = http.StatusOK
	}
	c.JSON(status, Response{
		Code: code,
		Msg:  msg,
	})
}
