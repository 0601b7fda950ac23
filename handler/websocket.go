package handler

import (
	"Cookhub/config"
	"Cookhub/middleware"
	"Cookhub/pkg/context"
	"Cookhub/pkg/log"
	"Cookhub/socket"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocket struct {
	Config *config.Config
	Hub    *socket.Hub
}

func (h *WebSocket) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/ws/notifications", middleware.Auth([]byte(h.Config.Jwt.Secret)), context.Wrap(h.Connect))
}

// Connect 升级为 websocket，连接期间收到的通知实时下发
func (h *WebSocket) Connect(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.L.Warn("websocket upgrade failed", zap.Uint64("uid", userID), zap.Error(err))
		return nil
	}
	socket.NewClient(h.Hub, conn, userID).Start()
	return nil
}
