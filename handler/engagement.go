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

type Engagement struct {
	Config          *config.Config
	LikeService     service.ILikeService
	FavoriteService service.IFavoriteService
	RatingService   service.IRatingService
}

func (h *Engagement) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/recipe/:slug", authorize)
	g.POST("/like", context.Wrap(h.Like))
	g.POST("/favorite", context.Wrap(h.Favorite))
	g.POST("/rate", context.Wrap(h.Rate))

	r.GET("/v1/favorites", authorize, context.Wrap(h.Favorites))
}

// Like 点赞切换
func (h *Engagement) Like(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.LikeService.Toggle(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

// Favorite 收藏切换
func (h *Engagement) Favorite(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.FavoriteService.Toggle(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Engagement) Favorites(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	page, err := h.FavoriteService.List(c.Request.Context(), userID, pageOf(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, page)
	return nil
}

// Rate 评分 1..5，同一用户重复评分覆盖
func (h *Engagement) Rate(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.RateRequest
	if err := c.ShouldBind(&req); err != nil {
		return badRequest(err)
	}
	resp, err := h.RatingService.Rate(c.Request.Context(), userID, c.Param("slug"), req.Score)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
