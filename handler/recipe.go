package handler

import (
	"Cookhub/config"
	"Cookhub/middleware"
	"Cookhub/pkg/context"
	"Cookhub/pkg/response"
	"Cookhub/service"
	"Cookhub/types"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type Recipe struct {
	Config        *config.Config
	RecipeService service.IRecipeService
	MediaService  service.IMediaService
}

func (h *Recipe) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)

	r.GET("/v1/recipes", context.Wrap(h.List))
	r.GET("/v1/search", context.Wrap(h.Search))

	g := r.Group("/v1/recipe")
	g.POST("/new", authorize, context.Wrap(h.Create))
	g.GET("/:slug", middleware.OptionalAuth(secret), context.Wrap(h.Detail))
	g.PUT("/:slug", authorize, context.Wrap(h.Update))
	g.DELETE("/:slug", authorize, context.Wrap(h.Delete))
}

// List 首页，已发布食谱按时间倒序
func (h *Recipe) List(c *gin.Context) error {
	page, err := h.RecipeService.List(c.Request.Context(), pageOf(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, page)
	return nil
}

// Search 支持标题、描述、配料、分类名、标签名
func (h *Recipe) Search(c *gin.Context) error {
	var q types.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return badRequest(err)
	}
	page, err := h.RecipeService.Search(c.Request.Context(), q.Q, q.Normalize())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, page)
	return nil
}

func (h *Recipe) Detail(c *gin.Context) error {
	resp, err := h.RecipeService.Detail(c.Request.Context(), context.OptionalUserID(c), c.Param("slug"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

// Create 支持 JSON；multipart 时 data 字段为 JSON，image 为封面文件
func (h *Recipe) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	req, err := h.bindRecipe(c)
	if err != nil {
		return err
	}
	item, err := h.RecipeService.Create(c.Request.Context(), userID, req)
	if err != nil {
		return bizError(err)
	}
	c.JSON(http.StatusCreated, response.Response{Code: 0, Msg: "Recipe created", Data: item})
	return nil
}

func (h *Recipe) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	req, err := h.bindRecipe(c)
	if err != nil {
		return err
	}
	item, err := h.RecipeService.Update(c.Request.Context(), userID, c.Param("slug"), req)
	if err != nil {
		return bizError(err)
	}
	response.SuccessMsg(c, "Recipe updated", item)
	return nil
}

func (h *Recipe) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	if err := h.RecipeService.Delete(c.Request.Context(), userID, c.Param("slug")); err != nil {
		return bizError(err)
	}
	response.SuccessMsg(c, "Recipe deleted", nil)
	return nil
}

func (h *Recipe) bindRecipe(c *gin.Context) (*types.RecipeRequest, error) {
	var req types.RecipeRequest
	if !strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, badRequest(err)
		}
		return &req, nil
	}

	if err := json.Unmarshal([]byte(c.PostForm("data")), &req); err != nil {
		return nil, badRequest(errors.New("data must be a JSON object"))
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return nil, badRequest(err)
	}
	if header, err := c.FormFile("image"); err == nil {
		up, err := h.MediaService.Upload(c.Request.Context(), service.MediaRecipeImages, header)
		if err != nil {
			return nil, bizError(err)
		}
		req.Image = up.Key
	}
	return &req, nil
}
