package handler

import (
	"Cookhub/config"
	"Cookhub/middleware"
	"Cookhub/pkg/context"
	"Cookhub/pkg/response"
	"Cookhub/service"
	"Cookhub/types"
	stdctx "context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Cookbook struct {
	Config          *config.Config
	CookbookService service.ICookbookService
}

func (h *Cookbook) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)

	g := r.Group("/v1/cookbooks")
	g.GET("", authorize, context.Wrap(h.List))
	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("/shared/:code", middleware.OptionalAuth(secret), context.Wrap(h.Shared))
	g.GET("/:id", middleware.OptionalAuth(secret), context.Wrap(h.Get))
	g.PUT("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.POST("/:id/add/:recipe_id", authorize, context.Wrap(h.AddRecipe))
	g.POST("/:id/remove/:recipe_id", authorize, context.Wrap(h.RemoveRecipe))
}

// List 我的食谱集 + 其他人的公开食谱集
func (h *Cookbook) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.CookbookService.List(c.Request.Context(), userID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Cookbook) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CookbookRequest
	if err := c.ShouldBind(&req); err != nil {
		return badRequest(err)
	}
	item, err := h.CookbookService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return bizError(err)
	}
	c.JSON(http.StatusCreated, response.Response{Code: 0, Msg: "Cookbook created", Data: item})
	return nil
}

// Get 私有食谱集仅作者可见
func (h *Cookbook) Get(c *gin.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.CookbookService.Get(c.Request.Context(), context.OptionalUserID(c), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Cookbook) Shared(c *gin.Context) error {
	resp, err := h.CookbookService.GetShared(c.Request.Context(), context.OptionalUserID(c), c.Param("code"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Cookbook) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req types.CookbookRequest
	if err := c.ShouldBind(&req); err != nil {
		return badRequest(err)
	}
	item, err := h.CookbookService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		return bizError(err)
	}
	response.SuccessMsg(c, "Cookbook updated", item)
	return nil
}

func (h *Cookbook) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.CookbookService.Delete(c.Request.Context(), userID, id); err != nil {
		return bizError(err)
	}
	response.SuccessMsg(c, "Cookbook deleted", nil)
	return nil
}

func (h *Cookbook) AddRecipe(c *gin.Context) error {
	return h.membership(c, h.CookbookService.AddRecipe, "Recipe added to cookbook")
}

func (h *Cookbook) RemoveRecipe(c *gin.Context) error {
	return h.membership(c, h.CookbookService.RemoveRecipe, "Recipe removed from cookbook")
}

func (h *Cookbook) membership(c *gin.Context, op func(ctx stdctx.Context, userID, id, recipeID uint64) error, msg string) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	recipeID, err := parseID(c, "recipe_id")
	if err != nil {
		return err
	}
	if err := op(c.Request.Context(), userID, id, recipeID); err != nil {
		return bizError(err)
	}
	response.SuccessMsg(c, msg, nil)
	return nil
}
