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

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	secret := []byte(u.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)

	r.GET("/v1/profile", authorize, context.Wrap(u.GetProfile))
	r.PUT("/v1/profile", authorize, context.Wrap(u.UpdateProfile))
	r.GET("/v1/user/:username", middleware.OptionalAuth(secret), context.Wrap(u.GetPublicProfile))
	r.GET("/v1/user/:username/recipes", context.Wrap(u.ListRecipes))
}

func (u *User) GetProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := u.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

// UpdateProfile 修改邮箱、简介、头像
func (u *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	resp, err := u.UserService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		return bizError(err)
	}
	response.SuccessMsg(c, "Profile updated", resp)
	return nil
}

func (u *User) GetPublicProfile(c *gin.Context) error {
	resp, err := u.UserService.GetPublicProfile(c.Request.Context(), context.OptionalUserID(c), c.Param("username"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (u *User) ListRecipes(c *gin.Context) error {
	resp, err := u.UserService.ListRecipes(c.Request.Context(), c.Param("username"), pageOf(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
