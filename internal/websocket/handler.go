package websocket

import (
	"context"
	"net/http"
	"time"

	"techhive-users/internal/middleware"
	"techhive-users/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Handler upgrades already authenticated requests into event streams.
type Handler struct {
	hub      *Hub
	logger   *logger.Logger
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, l *logger.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: l,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) Connect(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader already answered with an HTTP error
		return
	}

	subject := ""
	if res, ok := middleware.AuthResultFrom(c); ok && res.Claims != nil {
		subject = res.Claims.Subject
	}

	client := NewClient(conn, subject)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.hub.Register(client)
	go client.WriteLoop(ctx)
	if h.logger != nil {
		h.logger.InfoCtx(c.Request.Context(), "event stream opened for %q", subject)
	}

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.hub.Unregister(client)
	if h.logger != nil {
		h.logger.InfoCtx(c.Request.Context(), "event stream closed for %q", subject)
	}
}
