package api

import (
	"context"
	"encoding/json"
	"log"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// WatchContent upgrades the request to a WebSocket and streams site-content
// updates to the client: first the current document, then every subsequent
// save as it is published. The SPA uses this to re-render without polling.
func (h *ContentHandler) WatchContent(c *gin.Context) {
	ws, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("[Content] Failed to accept websocket: %v", err)
		return
	}
	defer ws.Close(websocket.StatusNormalClosure, "watch ended")

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Snapshot first so a fresh page load renders immediately.
	content, err := h.contentService.Get(ctx)
	if err != nil {
		log.Printf("[Content] Failed to load content for watch: %v", err)
		ws.Close(websocket.StatusInternalError, "failed to load content")
		return
	}
	if err := writeJSON(ctx, ws, content); err != nil {
		return
	}

	sub := h.contentService.Subscribe(ctx)
	defer sub.Close()

	// Drain client frames so pings are answered and closure is noticed.
	go func() {
		defer cancel()
		for {
			if _, _, err := ws.Read(ctx); err != nil {
				return
			}
		}
	}()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := ws.Write(ctx, websocket.MessageText, []byte(msg.Payload)); err != nil {
				return
			}
		}
	}
}

func writeJSON(ctx context.Context, ws *websocket.Conn, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return ws.Write(ctx, websocket.MessageText, data)
}
