package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetSessionID extracts the session ID from the Gin context
func GetSessionID(c *gin.Context) *uuid.UUID {
	sessionIDVal, exists := c.Get("session_id")
	if !exists {
		return nil
	}
	sessionID, ok := sessionIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &sessionID
}

// GetUsername extracts the cashier username from the Gin context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get("username")
	if !exists {
		return ""
	}
	return username.(string)
}
