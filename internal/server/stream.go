package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rickgao/skyblock-ah/internal/notify"
)

// StreamConfig holds websocket stream settings.
type StreamConfig struct {
	PingInterval time.Duration
	WriteTimeout time.Duration
}

// DefaultStreamConfig returns sensible defaults.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		PingInterval: 30 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// StreamHandler serves refresh events to websocket clients.
type StreamHandler struct {
	hub      *notify.Hub
	cfg      StreamConfig
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewStreamHandler(hub *notify.Hub, cfg StreamConfig, logger *slog.Logger) *StreamHandler {
	if logger == nil {
		logger = slog.Default()
	}
	def := DefaultStreamConfig()
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = def.PingInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}
	return &StreamHandler{
		hub: hub,
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: logger,
	}
}

// Stream handles GET /ws. Each client receives every cache event published
// after it connected, as one JSON text message per event.
func (s *StreamHandler) Stream(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already replied to the client.
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sub := s.hub.Subscribe()
	defer sub.Close()

	logger := s.logger.With("subscriber", sub.ID(), "remote", c.ClientIP())
	logger.Info("stream client connected")

	done := make(chan struct{})
	go s.readLoop(conn, sub, done)
	go s.pingLoop(conn, done, logger)

	for {
		ev, ok := sub.Next()
		if !ok {
			deadline := time.Now().Add(s.cfg.WriteTimeout)
			conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				deadline,
			)
			break
		}

		conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
		if err := conn.WriteJSON(ev); err != nil {
			logger.Debug("stream write failed", "error", err)
			break
		}
	}

	logger.Info("stream client disconnected", "dropped", sub.Dropped())
}

// readLoop consumes client frames so control messages are processed, and
// closes the subscription once the client goes away.
func (s *StreamHandler) readLoop(conn *websocket.Conn, sub *notify.Subscription, done chan struct{}) {
	defer close(done)
	defer sub.Close()

	pongWait := 2 * s.cfg.PingInterval
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// pingLoop keeps the connection alive until the reader exits.
func (s *StreamHandler) pingLoop(conn *websocket.Conn, done <-chan struct{}, logger *slog.Logger) {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(s.cfg.WriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, []byte("keepalive"), deadline); err != nil {
				logger.Debug("failed to send ping", "error", err)
			}
		}
	}
}
