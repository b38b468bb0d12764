package ws_venue

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Controller struct {
	hub    *Hub
	logger *slog.Logger
}

func NewController(hub *Hub) *Controller {
	return &Controller{
		hub:    hub,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws/venues/:venue_id", c.subscribe)
}

func (c *Controller) subscribe(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("venue_id"))
	if err != nil {
		ctx.Status(http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		hub:     c.hub,
		conn:    conn,
		send:    make(chan Event, 8),
		venueID: venueID.String(),
	}

	c.hub.register <- client
	go client.writePump()
	go client.readPump()
}

func (cl *Client) readPump() {
	defer func() {
		cl.hub.unregister <- cl
		cl.conn.Close()
	}()

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (cl *Client) writePump() {
	defer cl.conn.Close()

	for event := range cl.send {
		if err := cl.conn.WriteJSON(event); err != nil {
			break
		}
	}
}
