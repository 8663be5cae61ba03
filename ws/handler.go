package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type wsServiceImpl struct {
	manager  *ConnManager
	upgrader websocket.Upgrader
}

func NewWsService(manager *ConnManager) *wsServiceImpl {
	return &wsServiceImpl{
		manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// cross-origin policy is enforced upstream
				return true
			},
		},
	}
}

func (w *wsServiceImpl) Register(router *gin.Engine) {
	router.GET("/ws", w.Serve)
}

// Serve echo-broadcasts every received text frame to all connections,
// the sender included.
func (w *wsServiceImpl) Serve(c *gin.Context) {
	conn, err := w.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	w.manager.Connect(conn)
	defer func() {
		w.manager.Disconnect(conn)
		conn.Close()
	}()

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		w.manager.Broadcast(string(data))
	}
}
