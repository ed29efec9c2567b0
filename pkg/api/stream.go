package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"github.com/transparencia-ai/veritas/pkg/events"
	"github.com/transparencia-ai/veritas/pkg/logging"
)

const sseKeepAlive = 25 * time.Second

// resumeCursor reads the catch-up cursor: the Last-Event-ID header (SSE
// reconnects set it automatically) or the last_event_id query parameter.
// Absent means live-only.
func resumeCursor(c *gin.Context) int {
	raw := c.GetHeader("Last-Event-ID")
	if raw == "" {
		raw = c.Query("last_event_id")
	}
	if raw == "" {
		return -1
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return id
}

// handleSSE streams one investigation's events as server-sent events.
func (s *Server) handleSSE(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	// Access check before attaching to the stream.
	if _, err := s.deps.Investigations.Get(ctx, principalFrom(c), id); err != nil {
		s.renderError(c, err)
		return
	}

	sub, err := s.deps.Manager.Subscribe(ctx, events.ChannelFor(id), resumeCursor(c))
	if err != nil {
		s.renderError(c, err)
		return
	}
	defer s.deps.Manager.Unsubscribe(sub)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.Flush()

	flusher, _ := c.Writer.(http.Flusher)
	keepAlive := time.NewTicker(sseKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-keepAlive.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			if flusher != nil {
				flusher.Flush()
			}
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			data, err := json.Marshal(ev.Payload)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "id: %d\nevent: %s\ndata: %s\n\n", ev.ID, ev.Type, data)
			if flusher != nil {
				flusher.Flush()
			}
		}
	}
}

// wsClientFrame is an inbound client frame. Cancel is the only action.
type wsClientFrame struct {
	Action string `json:"action"`
}

// handleWebSocket streams one investigation's events over a WebSocket.
func (s *Server) handleWebSocket(c *gin.Context) {
	id := c.Param("id")
	principal := principalFrom(c)

	ctx, cancelConn := context.WithCancel(c.Request.Context())
	defer cancelConn()

	if _, err := s.deps.Investigations.Get(ctx, principal, id); err != nil {
		s.renderError(c, err)
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		logging.FromContext(ctx).Warn("WebSocket accept failed", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	sub, err := s.deps.Manager.Subscribe(ctx, events.ChannelFor(id), resumeCursor(c))
	if err != nil {
		conn.Close(websocket.StatusInternalError, "subscribe failed")
		return
	}
	defer s.deps.Manager.Unsubscribe(sub)

	// Read pump: handles ping/pong, ends the stream when the client goes
	// away, and accepts cancel frames for the streamed investigation.
	go func() {
		defer cancelConn()
		for {
			var frame wsClientFrame
			if err := wsjson.Read(ctx, conn, &frame); err != nil {
				return
			}
			if frame.Action != "cancel" {
				continue
			}
			if _, err := s.deps.Investigations.Cancel(ctx, principal, id); err != nil {
				logging.FromContext(ctx).Warn("WebSocket cancel failed",
					"investigation_id", id, "error", err)
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := wsjson.Write(writeCtx, conn, ev)
			cancel()
			if err != nil {
				return
			}
		}
	}
}
