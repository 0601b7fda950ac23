package handler

import (
	"Cookhub/config"
	"Cookhub/middleware"
	"Cookhub/pkg/context"
	"Cookhub/pkg/response"
	"Cookhub/service"
	"Cookhub/types"
	"fmt"

	"github.com/gin-gonic/gin"
)

type Shopping struct {
	Config          *config.Config
	ShoppingService service.IShoppingService
}

func (h *Shopping) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	r.GET("/v1/recipe/:slug/shopping-options", authorize, context.Wrap(h.Options))
	r.POST("/v1/recipe/:slug/add-to-shopping-list", authorize, context.Wrap(h.AddFromRecipe))

	g := r.Group("/v1/shopping-list", authorize)
	g.GET("", context.Wrap(h.Get))
	g.POST("", context.Wrap(h.AddItem))
	g.POST("/clear", context.Wrap(h.Clear))
	g.POST("/item/:id/toggle", context.Wrap(h.Toggle))
	g.DELETE("/item/:id", context.Wrap(h.Delete))
}

// Options 食谱配料勾选项，key 按行内容生成
func (h *Shopping) Options(c *gin.Context) error {
	resp, err := h.ShoppingService.Options(c.Request.Context(), c.Param("slug"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Shopping) AddFromRecipe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.AddToShoppingListRequest
	if err := c.ShouldBind(&req); err != nil {
		return badRequest(err)
	}
	resp, err := h.ShoppingService.AddFromRecipe(c.Request.Context(), userID, c.Param("slug"), req.Keys)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Shopping) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.ShoppingService.Get(c.Request.Context(), userID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

// AddItem 手动添加条目
func (h *Shopping) AddItem(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.ShoppingItemRequest
	if err := c.ShouldBind(&req); err != nil {
		return badRequest(err)
	}
	item, err := h.ShoppingService.AddItem(c.Request.Context(), userID, &req)
	if err != nil {
		return bizError(err)
	}
	response.SuccessMsg(c, "Item added", item)
	return nil
}

func (h *Shopping) Toggle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.ShoppingService.ToggleItem(c.Request.Context(), userID, id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, item)
	return nil
}

func (h *Shopping) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.ShoppingService.DeleteItem(c.Request.Context(), userID, id); err != nil {
		return bizError(err)
	}
	response.SuccessMsg(c, "Item removed", nil)
	return nil
}

func (h *Shopping) Clear(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	n, err := h.ShoppingService.Clear(c.Request.Context(), userID)
	if err != nil {
		return bizError(err)
	}
	response.SuccessMsg(c, fmt.Sprintf("%d items removed", n), gin.H{"removed": n})
	return nil
}
