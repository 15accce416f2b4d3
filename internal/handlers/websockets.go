package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"food_monitor/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB

	// Poll cadence bounds for ?interval= and ?interval_ms=.
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000

	msgTypeSignal = "signal"
)

type wsEnvelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// The dashboard may be served from another origin.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// signalCursor remembers the last signal pushed to one client.
type signalCursor struct {
	sent bool
	last models.SignalState
}

// advance reports whether st differs from what the client already has,
// and records it as sent when it does.
func (c *signalCursor) advance(st models.SignalState) bool {
	if c.sent && sameSignal(c.last, st) {
		return false
	}
	c.sent, c.last = true, st.Clone()
	return true
}

func sameSignal(a, b models.SignalState) bool {
	return a.LastUpdate.Equal(b.LastUpdate) &&
		a.Status == b.Status &&
		a.GreenOn == b.GreenOn && a.YellowOn == b.YellowOn && a.RedOn == b.RedOn &&
		equalStr(a.Category, b.Category) &&
		equalFloat(a.Temperature, b.Temperature)
}

func equalStr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// @Summary      Signal stream
// @Description  Sends {"type":"signal","data":SignalState} on connect, then again only when the stored signal changes.
// @Description  The store is polled every ?interval= (Go duration) or ?interval_ms=, max 10s.
// @Tags         signal
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	poll := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	closed := make(chan struct{})
	go h.drainClient(conn, closed)

	if err := h.streamSignal(c.Request.Context(), conn, poll, closed); err != nil && h.log != nil {
		h.log.Infow("ws_stream_ended", "err", err)
	}
}

// streamSignal pushes the signal whenever it changes until the client leaves.
func (h *Handler) streamSignal(ctx context.Context, conn *websocket.Conn, poll time.Duration, closed <-chan struct{}) error {
	var cursor signalCursor

	pollTicker := time.NewTicker(poll)
	defer pollTicker.Stop()
	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	push := func() error {
		st := h.services.Current(ctx)
		if !cursor.advance(st) {
			return nil
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(wsEnvelope{Type: msgTypeSignal, Data: st})
	}

	if err := push(); err != nil {
		return err
	}
	for {
		select {
		case <-closed:
			return nil
		case <-ctx.Done():
			return nil
		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		case <-pollTicker.C:
			if err := push(); err != nil {
				return err
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000; out-of-range values fall back to the default.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}
	return defaultInterval
}

// drainClient consumes client frames so pongs and close frames are processed.
func (h *Handler) drainClient(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
