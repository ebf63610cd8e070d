package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hoagiehub/hoagie-api/internal/container"
	handlers "github.com/hoagiehub/hoagie-api/internal/interface/http"
	"github.com/hoagiehub/hoagie-api/internal/interface/middleware"
)

// CommentModule wires the comment routes.
type CommentModule struct {
	Handler *handlers.CommentHandler
}

func NewCommentModule(h *handlers.CommentHandler) *CommentModule {
	return &CommentModule{Handler: h}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/comments", m.Handler.List)
	rg.GET("/comments/:id", m.Handler.Get)
	rg.POST("/comments", writeLimiter, m.Handler.Create)
	rg.PUT("/comments/:id", writeLimiter, m.Handler.Update)
	rg.DELETE("/comments/:id", writeLimiter, m.Handler.Delete)
}
