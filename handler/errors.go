package handler

import (
	"Cookhub/pkg/response"
	"Cookhub/service"
	"Cookhub/types"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{service.ErrRecipeNotFound, http.StatusNotFound},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrCommentNotFound, http.StatusNotFound},
	{service.ErrCookbookNotFound, http.StatusNotFound},
	{service.ErrNotificationNotFound, http.StatusNotFound},
	{service.ErrShoppingItemNotFound, http.StatusNotFound},
	{service.ErrCategoryNotFound, http.StatusNotFound},
	{service.ErrTagNotFound, http.StatusNotFound},

	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrPrivateCookbook, http.StatusForbidden},

	{service.ErrInvalidScore, http.StatusBadRequest},
	{service.ErrSelfFollow, http.StatusBadRequest},
	{service.ErrEmptyComment, http.StatusBadRequest},
	{service.ErrUsernameTaken, http.StatusBadRequest},
	{service.ErrEmailTaken, http.StatusBadRequest},
	{service.ErrInvalidImage, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
}

// bizError 领域错误转为带状态码的 BizError，其余原样返回由 Wrap 记录并返回 500
func bizError(err error) error {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			msg := e.err.Error()
			if e.err == service.ErrInvalidImage {
				msg = err.Error()
			}
			return response.NewError(e.status, msg)
		}
	}
	return err
}

func badRequest(err error) error {
	return response.NewError(http.StatusBadRequest, err.Error())
}

func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}

// pageOf 非法页码按第一页处理
func pageOf(c *gin.Context) int {
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return 1
	}
	return q.Normalize()
}
