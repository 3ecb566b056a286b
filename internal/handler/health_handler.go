package handler

import (
	"context"
	"net/http"

	"techhive-users/internal/repository"
	"techhive-users/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// PingFunc checks an optional dependency; nil means there is nothing to check.
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	users repository.UserRepository
	ping  PingFunc
}

func NewHealthHandler(users repository.UserRepository, ping PingFunc) *HealthHandler {
	return &HealthHandler{users: users, ping: ping}
}

func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (h *HealthHandler) Health(c *gin.Context) {
	resp := httpdto.HealthResponse{
		Status: "healthy",
		Users:  h.users.Count(c.Request.Context()),
	}
	if h.ping != nil {
		if err := h.ping(c.Request.Context()); err != nil {
			resp.Status = "unhealthy"
			resp.Error = err.Error()
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}
