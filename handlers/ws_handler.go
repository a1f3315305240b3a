package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/travelmate-app/travelmate-backend/config"
	"github.com/travelmate-app/travelmate-backend/logger"
	"github.com/travelmate-app/travelmate-backend/middleware"
	"github.com/travelmate-app/travelmate-backend/services"
)

const (
	presenceWriteTimeout     = 10 * time.Second
	presenceConnectLimit     = 5
	presenceConnectWindowDur = time.Minute
)

// PresenceClientMessage is a message from the client on the presence socket.
type PresenceClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// PresenceServerMessage is a message to the client on the presence socket.
type PresenceServerMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PresenceHandler keeps a websocket open per active planning session and
// refreshes the user's Redis presence marker while it lives.
type PresenceHandler struct {
	presence          *services.PresenceService
	rateLimit         services.RateLimiterInterface
	log               *zap.SugaredLogger
	heartbeatInterval time.Duration
	allowedOrigins    []string
	isDevelopment     bool
}

func NewPresenceHandler(presence *services.PresenceService, rateLimit services.RateLimiterInterface, serverCfg *config.ServerConfig, presenceCfg config.PresenceConfig) *PresenceHandler {
	interval := time.Duration(presenceCfg.HeartbeatSeconds) * time.Second
	if interval <= 0 {
		interval = 20 * time.Second
	}
	return &PresenceHandler{
		presence:          presence,
		rateLimit:         rateLimit,
		log:               logger.GetLogger().Named("presence_handler"),
		heartbeatInterval: interval,
		allowedOrigins:    serverCfg.AllowedOrigins,
		isDevelopment:     serverCfg.Environment == config.EnvDevelopment,
	}
}

func (h *PresenceHandler) acceptOptions() *websocket.AcceptOptions {
	opts := &websocket.AcceptOptions{
		CompressionMode: websocket.CompressionContextTakeover,
	}

	if h.isDevelopment {
		opts.InsecureSkipVerify = true
	} else {
		opts.OriginPatterns = h.allowedOrigins
	}

	return opts
}

// HandlePresenceSocket upgrades the connection and refreshes presence until
// the socket closes. The Redis TTL covers missed heartbeats, so a dropped
// connection ages out on its own.
func (h *PresenceHandler) HandlePresenceSocket(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if h.rateLimit != nil {
		allowed, retryAfter, err := h.rateLimit.CheckLimit(
			c.Request.Context(), "ws:connect:"+userID, presenceConnectLimit, presenceConnectWindowDur)
		if err != nil {
			h.log.Warnw("Presence rate limit check failed", "userID", userID, "error", err)
		} else if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many connections",
				"retry_after": int(retryAfter.Seconds()),
			})
			return
		}
	}

	conn, err := websocket.Accept(c.Writer, c.Request, h.acceptOptions())
	if err != nil {
		h.log.Errorw("Failed to accept presence connection", "userID", userID, "error", err)
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	if err := h.presence.Heartbeat(ctx, userID); err != nil {
		h.log.Errorw("Initial presence heartbeat failed", "userID", userID, "error", err)
		_ = conn.Close(websocket.StatusInternalError, "presence unavailable")
		return
	}

	defer func() {
		// Best effort; the TTL is the fallback.
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), presenceWriteTimeout)
		defer disconnectCancel()
		if err := h.presence.Disconnect(disconnectCtx, userID); err != nil {
			h.log.Warnw("Failed to clear presence on disconnect", "userID", userID, "error", err)
		}
	}()

	if err := h.sendMessage(ctx, conn, PresenceServerMessage{
		Type:    "connected",
		Payload: map[string]string{"userId": userID},
	}); err != nil {
		h.log.Errorw("Failed to send connected message", "userID", userID, "error", err)
		return
	}

	h.log.Infow("Presence connection established", "userID", userID)

	errCh := make(chan error, 2)

	go func() {
		errCh <- h.readLoop(ctx, conn, userID)
	}()

	go func() {
		errCh <- h.heartbeatLoop(ctx, conn, userID)
	}()

	err = <-errCh
	if err != nil && websocket.CloseStatus(err) != websocket.StatusNormalClosure {
		h.log.Debugw("Presence connection closed", "userID", userID, "error", err)
	}
}

// readLoop answers client pings and absorbs unknown message types.
func (h *PresenceHandler) readLoop(ctx context.Context, conn *websocket.Conn, userID string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var msg PresenceClientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return err
		}

		switch msg.Type {
		case "ping":
			if err := h.presence.Heartbeat(ctx, userID); err != nil {
				h.log.Warnw("Heartbeat refresh failed", "userID", userID, "error", err)
			}
			_ = h.sendMessage(ctx, conn, PresenceServerMessage{Type: "pong"})
		default:
			h.log.Debugw("Unknown presence message type", "userID", userID, "type", msg.Type)
		}
	}
}

// heartbeatLoop refreshes presence and pings the peer on a fixed interval.
func (h *PresenceHandler) heartbeatLoop(ctx context.Context, conn *websocket.Conn, userID string) error {
	ticker := time.NewTicker(h.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := h.presence.Heartbeat(ctx, userID); err != nil {
				h.log.Warnw("Heartbeat refresh failed", "userID", userID, "error", err)
			}

			pingCtx, pingCancel := context.WithTimeout(ctx, presenceWriteTimeout)
			err := conn.Ping(pingCtx)
			pingCancel()
			if err != nil {
				return err
			}
		}
	}
}

func (h *PresenceHandler) sendMessage(ctx context.Context, conn *websocket.Conn, msg PresenceServerMessage) error {
	writeCtx, cancel := context.WithTimeout(ctx, presenceWriteTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, msg)
}

// OnlineStatusHandler godoc
// @Summary Check which users are currently online
// @Tags presence
// @Produce json
// @Param ids query string true "Comma-separated user IDs"
// @Success 200 {object} map[string]bool "Presence by user ID"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Missing ids"
// @Router /presence [get]
// @Security BearerAuth
func (h *PresenceHandler) OnlineStatusHandler(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("ids"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids query parameter is required"})
		return
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	status, err := h.presence.OnlineStatus(c.Request.Context(), ids)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, status)
}
