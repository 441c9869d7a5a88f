package orders

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

var (
	subscribers []*websocket.Conn
	mu          sync.Mutex
)

// HandleOrderEventsWS subscribes an admin dashboard to live order events.
// Admin auth is enforced by the routing layer.
func HandleOrderEventsWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers = append(subscribers, conn)
	mu.Unlock()

	for {
		// Keeps the connection alive until the client disconnects
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	mu.Lock()
	newList := make([]*websocket.Conn, 0, len(subscribers))
	for _, c := range subscribers {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers = newList
	mu.Unlock()

	conn.Close()
}

// BroadcastOrderEvent pushes a raw order event payload to every connected
// dashboard, dropping dead connections along the way.
func BroadcastOrderEvent(data []byte) {
	mu.Lock()
	defer mu.Unlock()

	newList := subscribers[:0]
	for _, conn := range subscribers {
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}
	subscribers = newList
}
