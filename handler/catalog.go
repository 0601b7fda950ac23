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

type Catalog struct {
	Config         *config.Config
	CatalogService service.ICatalogService
	RecipeService  service.IRecipeService
}

func (h *Catalog) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	r.GET("/v1/categories", context.Wrap(h.ListCategories))
	r.POST("/v1/categories", authorize, context.Wrap(h.CreateCategory))
	r.GET("/v1/tags", context.Wrap(h.ListTags))
	r.GET("/v1/category/:slug", context.Wrap(h.CategoryRecipes))
	r.GET("/v1/tag/:slug", context.Wrap(h.TagRecipes))
}

func (h *Catalog) ListCategories(c *gin.Context) error {
	list, err := h.CatalogService.ListCategories(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, list)
	return nil
}

func (h *Catalog) CreateCategory(c *gin.Context) error {
	var req types.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	item, err := h.CatalogService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, item)
	return nil
}

func (h *Catalog) ListTags(c *gin.Context) error {
	list, err := h.CatalogService.ListTags(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, list)
	return nil
}

// CategoryRecipes 分类下的已发布食谱
func (h *Catalog) CategoryRecipes(c *gin.Context) error {
	page, err := h.RecipeService.ListByCategory(c.Request.Context(), c.Param("slug"), pageOf(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, page)
	return nil
}

// TagRecipes 标签下的已发布食谱
func (h *Catalog) TagRecipes(c *gin.Context) error {
	page, err := h.RecipeService.ListByTag(c.Request.Context(), c.Param("slug"), pageOf(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, page)
	return nil
}
