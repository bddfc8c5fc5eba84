package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/presentation/http/dto/request"
	"github.com/jpmanalo/bakepos-counter/internal/presentation/http/dto/response"
	"github.com/jpmanalo/bakepos-counter/pkg/utils"
)

// SessionHandler opens counter sessions for cashiers.
type SessionHandler struct {
	jwtManager *utils.JWTManager
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(jwtManager *utils.JWTManager) *SessionHandler {
	return &SessionHandler{jwtManager: jwtManager}
}

// Start opens a session for a cashier username. The username is not
// authenticated here; it is resolved against the backend's employee list at
// checkout time.
func (h *SessionHandler) Start(c *gin.Context) {
	var req request.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username is required")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		response.BadRequest(c, "Username is required")
		return
	}

	sessionID := uuid.New()
	token, err := h.jwtManager.GenerateSessionToken(sessionID, username)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Session started", gin.H{
		"token":      token,
		"session_id": sessionID,
		"username":   username,
	})
}
