package socket

import (
	"Cookhub/pkg/log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 << 10
	sendBuffer     = 64
)

var clientIDCounter atomic.Uint64

// Client 一个 websocket 连接，只推送不接收业务消息
type Client struct {
	id   uint64
	uid  uint64
	hub  *Hub
	conn *websocket.Conn
	send chan any

	once sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, uid uint64) *Client {
	return &Client{
		id:   clientIDCounter.Add(1),
		uid:  uid,
		hub:  hub,
		conn: conn,
		send: make(chan any, sendBuffer),
	}
}

func (c *Client) ID() uint64 {
	return c.id
}

func (c *Client) UID() uint64 {
	return c.uid
}

// Write 非阻塞写入发送队列，队列满时丢弃
func (c *Client) Write(msg any) bool {
	select {
	case c.send <- msg:
		return true
	default:
		log.L.Warn("websocket send buffer full, drop message", zap.Uint64("uid", c.uid), zap.Uint64("cid", c.id))
		return false
	}
}

// Start 注册到 hub 并启动读写协程
func (c *Client) Start() {
	c.hub.Register(c)
	go c.writePump()
	go c.readPump()
}

func (c *Client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.L.Debug("websocket closed", zap.Uint64("uid", c.uid), zap.Error(err))
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				log.L.Debug("websocket write failed", zap.Uint64("uid", c.uid), zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
