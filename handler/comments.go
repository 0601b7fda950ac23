package handler

import (
	"Cookhub/config"
	"Cookhub/middleware"
	"Cookhub/pkg/context"
	"Cookhub/pkg/response"
	"Cookhub/service"
	"Cookhub/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/recipe/:slug")
	g.GET("/comments", context.Wrap(h.List))
	g.POST("/comment", authorize, context.Wrap(h.Create))
	g.POST("/comment/:id/reply", authorize, context.Wrap(h.Reply))
	g.DELETE("/comment/:id", authorize, context.Wrap(h.Delete))
}

func (h *Comment) List(c *gin.Context) error {
	list, err := h.CommentService.List(c.Request.Context(), c.Param("slug"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, list)
	return nil
}

func (h *Comment) Create(c *gin.Context) error {
	var req types.CreateCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		return badRequest(err)
	}
	return h.create(c, &req)
}

// Reply 路径中的 id 为父评论
func (h *Comment) Reply(c *gin.Context) error {
	parentID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req types.CreateCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		return badRequest(err)
	}
	req.ParentID = &parentID
	return h.create(c, &req)
}

func (h *Comment) create(c *gin.Context, req *types.CreateCommentRequest) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	item, err := h.CommentService.Create(c.Request.Context(), userID, c.Param("slug"), req)
	if err != nil {
		return bizError(err)
	}
	c.JSON(http.StatusCreated, response.Response{Code: 0, Msg: "Comment added", Data: item})
	return nil
}

// Delete 仅评论作者可删，回复一并删除
func (h *Comment) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.CommentService.Delete(c.Request.Context(), userID, c.Param("slug"), id); err != nil {
		return bizError(err)
	}
	response.SuccessMsg(c, "Comment deleted", nil)
	return nil
}
