package handler

import (
	"Cookhub/config"
	"Cookhub/middleware"
	"Cookhub/pkg/context"
	"Cookhub/pkg/response"
	"Cookhub/service"
	"Cookhub/types"

	"github.com/gin-gonic/gin"
)

type Notification struct {
	Config        *config.Config
	NoticeService service.INoticeService
}

func (h *Notification) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/notifications", authorize)
	g.GET("", context.Wrap(h.List))
	g.GET("/count", context.Wrap(h.Count))
	g.POST("/:id/read", context.Wrap(h.MarkRead))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

// List 返回本页后把全部未读标记为已读
func (h *Notification) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	page, err := h.NoticeService.List(c.Request.Context(), userID, pageOf(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, page)
	return nil
}

func (h *Notification) Count(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	n, err := h.NoticeService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, &types.UnreadCountResponse{Count: n})
	return nil
}

func (h *Notification) MarkRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.NoticeService.MarkRead(c.Request.Context(), userID, id); err != nil {
		return bizError(err)
	}
	response.Success(c, gin.H{"success": true})
	return nil
}

func (h *Notification) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.NoticeService.Delete(c.Request.Context(), userID, id); err != nil {
		return bizError(err)
	}
	response.Success(c, gin.H{"success": true})
	return nil
}
