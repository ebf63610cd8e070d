package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hoagiehub/hoagie-api/internal/container"
	handlers "github.com/hoagiehub/hoagie-api/internal/interface/http"
	"github.com/hoagiehub/hoagie-api/internal/interface/middleware"
)

// HoagieModule wires the hoagie aggregate routes, including collaborator
// mutation and picture upload.
type HoagieModule struct {
	Handler *handlers.HoagieHandler
}

func NewHoagieModule(h *handlers.HoagieHandler) *HoagieModule {
	return &HoagieModule{Handler: h}
}

func (m *HoagieModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)
	uploadLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/hoagies", m.Handler.List)
	rg.GET("/hoagies/:id", m.Handler.Get)
	rg.POST("/hoagies", writeLimiter, m.Handler.Create)
	rg.PUT("/hoagies/:id", writeLimiter, m.Handler.Update)
	rg.DELETE("/hoagies/:id", writeLimiter, m.Handler.Delete)

	rg.POST("/hoagies/:id/collaborators", writeLimiter, m.Handler.AddCollaborator)
	rg.DELETE("/hoagies/:id/collaborators/:userId", writeLimiter, m.Handler.RemoveCollaborator)

	rg.POST("/hoagies/:id/picture", uploadLimiter, m.Handler.UploadPicture)
}
