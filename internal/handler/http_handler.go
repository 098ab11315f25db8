package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/domain"
	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/service"
	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/pkg/log"
)

const appVersion = "1.0.0"

// Handler handles HTTP requests for the chatbot service.
type Handler struct {
	chat    service.ChatService
	appName string
}

// NewHandler creates a new HTTP handler.
func NewHandler(chat service.ChatService, appName string) *Handler {
	return &Handler{
		chat:    chat,
		appName: appName,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/chat", h.Chat)

	// Spring-compatible probe endpoints for the platform's existing
	// infrastructure.
	actuator := r.Group("/actuator")
	{
		actuator.GET("/health", h.Health)
		actuator.GET("/info", h.Info)
	}
}

// Chat handles one request/response chat exchange. Well-formed input
// always gets a 200 with a reply.
func (h *Handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l := log.Ctx(ctx)
		l.Warn().Err(err).Msg("invalid chat request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, domain.ChatResponse{Response: h.chat.Reply(ctx, req.Message)})
}

// Health is the liveness/readiness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

// Info reports the service identity.
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"app": h.appName, "version": appVersion})
}
