package handler

import (
	"Cookhub/config"
	"Cookhub/pkg/context"
	"Cookhub/pkg/response"
	"Cookhub/service"
	"Cookhub/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(a.Register))
	g.POST("/login", context.Wrap(a.Login))
}

// Register 注册并返回 token
func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	resp, err := a.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.SuccessMsg(c, "Registration successful", resp)
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	resp, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
