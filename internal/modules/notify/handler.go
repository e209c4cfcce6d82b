package notify

import (
	"net/http"
	"strings"

	"gearshare/internal/pkg/jwt"
	"gearshare/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub        *Hub
	jwtService *jwt.Service
	log        *zap.Logger
}

func NewHandler(hub *Hub, jwtService *jwt.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{hub: hub, jwtService: jwtService, log: log}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/ws/notifications", h.Subscribe)
}

// Subscribe upgrades to a websocket that receives the caller's events.
//
// Endpoint: GET /ws/notifications?username=NAME (or ?token=JWT)
func (h *Handler) Subscribe(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" && h.jwtService != nil {
		if claims, err := h.jwtService.ValidateToken(c.Query("token")); err == nil {
			username = claims.Username
		}
	}
	if username == "" {
		response.Error(c, http.StatusBadRequest, "PRINCIPAL_REQUIRED", "username or token query parameter is required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(username, conn)
	h.log.Debug("notification subscriber connected",
		zap.String("username", username),
		zap.Int("online", h.hub.OnlineCount()))
	defer h.hub.Unregister(username, conn)

	// the client never sends anything meaningful; reading detects disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
