package notify

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub fans summit events out to websocket subscribers, per activity. With a
// redis client attached it also bridges events across instances via pub/sub.
// Messages carry the originating hub's id so the bridge can drop its own
// publishes instead of echoing them back to local subscribers.
type Hub struct {
	id      string
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

// wireMessage is the envelope published over redis. Data rides as base64 so
// the envelope stays valid JSON for any payload bytes.
type wireMessage struct {
	Origin string `json:"origin"`
	Data   []byte `json:"data"`
}

type Client struct {
	ActivityID string
	Send       chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		id:      uuid.NewString(),
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(activityID string) *Client {
	client := &Client{
		ActivityID: activityID,
		Send:       make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[activityID] == nil {
		h.clients[activityID] = map[*Client]struct{}{}
	}
	h.clients[activityID][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if activityClients, ok := h.clients[client.ActivityID]; ok {
		delete(activityClients, client)
		if len(activityClients) == 0 {
			delete(h.clients, client.ActivityID)
		}
	}
	close(client.Send)
}

// PublishSummit serializes the summit and broadcasts it to the activity's
// subscribers. Marshal and publish failures are logged, never fatal.
func (h *Hub) PublishSummit(activityID string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("summit marshal error: %v", err)
		return
	}
	h.Broadcast(activityID, payload)
}

func (h *Hub) Broadcast(activityID string, payload []byte) {
	h.deliver(activityID, payload)

	if h.redis != nil {
		wire, err := json.Marshal(wireMessage{Origin: h.id, Data: payload})
		if err != nil {
			log.Printf("wire marshal error: %v", err)
			return
		}
		if err := h.redis.Publish(context.Background(), redisChannel(activityID), wire).Err(); err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

func (h *Hub) deliver(activityID string, payload []byte) {
	h.mu.RLock()
	clients := h.clients[activityID]
	h.mu.RUnlock()

	for client := range clients {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "summits:*:events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var wire wireMessage
		if err := json.Unmarshal([]byte(msg.Payload), &wire); err != nil {
			log.Printf("wire unmarshal error: %v", err)
			continue
		}
		// Local subscribers already got this message via Broadcast.
		if wire.Origin == h.id {
			continue
		}
		h.deliver(activityIDFromChannel(msg.Channel), wire.Data)
	}
}

func redisChannel(activityID string) string {
	return "summits:" + activityID + ":events"
}

func activityIDFromChannel(ch string) string {
	// summits:{activity}:events
	const prefix = "summits:"
	const suffix = ":events"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
