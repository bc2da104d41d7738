// pedido_web_socket.go
package pedidoControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu       sync.Mutex
	wsClientes = make(map[*websocket.Conn]bool)
)

type eventoPedido struct {
	Tipo   string         `json:"tipo"` // "nuevo" o "estado"
	Pedido *models.Pedido `json:"pedido"`
}

// GET /pedidos/ws — feed en vivo de altas y cambios de estado para el panel.
func PedidoWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClientes[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClientes, conn)
			wsMu.Unlock()
			break
		}
	}
}

func broadcastPedido(tipo string, pedido *models.Pedido) {
	data, err := json.Marshal(eventoPedido{Tipo: tipo, Pedido: pedido})
	if err != nil {
		return
	}

	wsMu.Lock()
	defer wsMu.Unlock()
	for cliente := range wsClientes {
		cliente.WriteMessage(websocket.TextMessage, data)
	}
}
