package handler

import (
	"Cookhub/config"
	"Cookhub/middleware"
	"Cookhub/pkg/context"
	"Cookhub/pkg/response"
	"Cookhub/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Media struct {
	Config       *config.Config
	MediaService service.IMediaService
}

func (h *Media) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	r.POST("/v1/media/upload", authorize, context.Wrap(h.Upload))
}

// Upload ?kind= 取 recipe_images/step_images/profile_images/cookbook_covers，表单字段 file
func (h *Media) Upload(c *gin.Context) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxUploadSize+1<<20)
	header, err := c.FormFile("file")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "file is required")
	}
	resp, err := h.MediaService.Upload(c.Request.Context(), c.DefaultQuery("kind", service.MediaRecipeImages), header)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
