package socket

import (
	"Cookhub/types"
	"strconv"
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// userClients 同一用户的多个连接
type userClients struct {
	mu      sync.RWMutex
	clients map[uint64]*Client
}

// Hub 本节点在线连接表，按用户ID分组
type Hub struct {
	users cmap.ConcurrentMap[string, *userClients]
}

func NewHub() *Hub {
	return &Hub{users: cmap.New[*userClients]()}
}

func (h *Hub) Register(c *Client) {
	h.users.Upsert(key(c.uid), nil, func(exist bool, old, _ *userClients) *userClients {
		if !exist {
			old = &userClients{clients: make(map[uint64]*Client)}
		}
		old.mu.Lock()
		old.clients[c.id] = c
		old.mu.Unlock()
		return old
	})
}

func (h *Hub) Unregister(c *Client) {
	h.users.RemoveCb(key(c.uid), func(_ string, uc *userClients, exists bool) bool {
		if !exists {
			return false
		}
		uc.mu.Lock()
		defer uc.mu.Unlock()
		delete(uc.clients, c.id)
		return len(uc.clients) == 0
	})
	c.close()
}

// Push 推送给用户的全部在线连接
func (h *Hub) Push(recipientID uint64, msg *types.PushMessage) {
	uc, ok := h.users.Get(key(recipientID))
	if !ok {
		return
	}
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, c := range uc.clients {
		c.Write(msg)
	}
}

// Online 用户在本节点的连接数
func (h *Hub) Online(uid uint64) int {
	uc, ok := h.users.Get(key(uid))
	if !ok {
		return 0
	}
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.clients)
}

func key(uid uint64) string {
	return strconv.FormatUint(uid, 10)
}
