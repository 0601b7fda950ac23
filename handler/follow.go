package handler

import (
	"Cookhub/config"
	"Cookhub/middleware"
	"Cookhub/pkg/context"
	"Cookhub/pkg/response"
	"Cookhub/service"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	r.POST("/v1/follow/:username", authorize, context.Wrap(f.Toggle))
	r.GET("/v1/following", authorize, context.Wrap(f.Following))
	r.GET("/v1/followers", authorize, context.Wrap(f.Followers))
}

// Toggle 关注/取消关注
func (f *Follow) Toggle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := f.FollowService.Toggle(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

// Following 我关注的人
func (f *Follow) Following(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := f.FollowService.ListFollowing(c.Request.Context(), userID, pageOf(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

// Followers 我的粉丝
func (f *Follow) Followers(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := f.FollowService.ListFollowers(c.Request.Context(), userID, pageOf(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
