package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/campusgg/events-api/internal/api/handler/v1/response"
	"github.com/campusgg/events-api/internal/domain"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = (livePongWait * 9) / 10
	liveSendBuffer = 16
)

type CountsMessage struct {
	EventID   uint                  `json:"event_id"`
	Responses domain.ResponseCounts `json:"responses"`
}

type liveClient struct {
	id      string
	eventID uint
	conn    *websocket.Conn
	send    chan []byte
}

// LiveHandler pushes RSVP counts to every socket watching an event.
type LiveHandler struct {
	events   EventService
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[uint]map[string]*liveClient

	register   chan *liveClient
	unregister chan *liveClient
	broadcast  chan CountsMessage
	done       chan struct{}
}

func NewLiveHandler(events EventService, allowedOrigins []string) *LiveHandler {
	return &LiveHandler{
		events: events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
		clients:    make(map[uint]map[string]*liveClient),
		register:   make(chan *liveClient),
		unregister: make(chan *liveClient),
		broadcast:  make(chan CountsMessage, 64),
		done:       make(chan struct{}),
	}
}

// Run serves registrations and broadcasts until ctx is done.
func (h *LiveHandler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for _, watchers := range h.clients {
				for _, c := range watchers {
					close(c.send)
				}
			}
			h.clients = make(map[uint]map[string]*liveClient)
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.clients[c.eventID] == nil {
				h.clients[c.eventID] = make(map[string]*liveClient)
			}
			h.clients[c.eventID][c.id] = c
			h.mu.Unlock()

		case c := <-h.unregister:
			h.remove(c)

		case msg := <-h.broadcast:
			payload, err := json.Marshal(msg)
			if err != nil {
				zap.L().Error("failed to encode counts", zap.Error(err))
				continue
			}

			h.mu.RLock()
			var slow []*liveClient
			for _, c := range h.clients[msg.EventID] {
				select {
				case c.send <- payload:
				default:
					slow = append(slow, c)
				}
			}
			h.mu.RUnlock()

			for _, c := range slow {
				h.remove(c)
			}
		}
	}
}

func (h *LiveHandler) remove(c *liveClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	watchers := h.clients[c.eventID]
	if _, ok := watchers[c.id]; !ok {
		return
	}
	delete(watchers, c.id)
	close(c.send)
	if len(watchers) == 0 {
		delete(h.clients, c.eventID)
	}
}

// Watchers returns the number of sockets subscribed to an event.
func (h *LiveHandler) Watchers(eventID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[eventID])
}

// Publish queues new counts for an event. It never blocks; counts are
// dropped when the queue is full.
func (h *LiveHandler) Publish(eventID uint, counts domain.ResponseCounts) {
	select {
	case h.broadcast <- CountsMessage{EventID: eventID, Responses: counts}:
	default:
		zap.L().Warn("live counts queue full, dropping update", zap.Uint("event_id", eventID))
	}
}

// HandleLive godoc
// @Summary      Watch RSVP counts
// @Description  Upgrades to a WebSocket. The current counts are sent first, then every change.
// @Tags         events
// @Param        eventID   path      int  true  "event ID"
// @Success      101  {object}   CountsMessage
// @Failure      400  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Router       /events/{eventID}/live [get]
func (h *LiveHandler) HandleLive(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	page, err := h.events.RefreshEventPage(ctx.Request.Context(), eventID, nil)
	if err != nil {
		response.RenderErr(ctx, eventNotFound(eventID, err))
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// The upgrader has already written the error response.
		zap.L().Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	initial, err := json.Marshal(CountsMessage{EventID: eventID, Responses: page.Event.Responses})
	if err != nil {
		_ = conn.Close()
		return
	}

	c := &liveClient{
		id:      uuid.NewString(),
		eventID: eventID,
		conn:    conn,
		send:    make(chan []byte, liveSendBuffer),
	}
	c.send <- initial

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go c.writePump()
	go c.readPump(h)
}

func (c *liveClient) writePump() {
	ticker := time.NewTicker(livePingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards incoming messages; it only notices when the peer leaves.
func (c *liveClient) readPump(h *LiveHandler) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(livePongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("live socket closed", zap.String("client_id", c.id), zap.Error(err))
			}
			return
		}
	}
}
