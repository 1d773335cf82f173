package handler

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const salesChannel = "vteam:sales"

var (
	redisClient = redis.NewClient(&redis.Options{Addr: func() string {
		if addr := os.Getenv("REDIS_ADDR"); addr != "" {
			return addr
		}
		return "localhost:6379"
	}()})

	clients = make(map[*websocket.Conn]bool)
	mu      sync.Mutex
)

// SalesEvent là bản tin đẩy cho dashboard mỗi khi chốt được vé.
type SalesEvent struct {
	PublicCode    string `json:"publicCode"`
	TicketType    string `json:"ticketType"`
	Homeroom      string `json:"homeroom"`
	PaymentMedium string `json:"paymentMedium"`
	Amount        int    `json:"amount"`
}

// PublishSalesEvent bắn bản tin lên kênh Redis, dashboard nào đang mở sẽ nhận.
func PublishSalesEvent(event SalesEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Lỗi mã hoá bản tin bán vé: %v", err)
		return
	}
	if err := redisClient.Publish(context.Background(), salesChannel, payload).Err(); err != nil {
		log.Printf("Lỗi publish bản tin bán vé: %v", err)
	}
}

// SalesFeedConnection xử lý WS connection của dashboard thống kê
func SalesFeedConnection(c *websocket.Conn) {
	// Khi WS disconnect → xoá client
	defer func() {
		mu.Lock()
		delete(clients, c)
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	clients[c] = true
	mu.Unlock()

	// Sub kênh Redis
	pubsub := redisClient.Subscribe(context.Background(), salesChannel)
	defer pubsub.Close()

	// Lắng nghe message từ Redis
	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients {
			// Nếu client lỗi → xoá
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients, conn)
			}
		}
		mu.Unlock()
	}
}
