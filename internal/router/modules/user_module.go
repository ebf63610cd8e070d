package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hoagiehub/hoagie-api/internal/container"
	handlers "github.com/hoagiehub/hoagie-api/internal/interface/http"
	"github.com/hoagiehub/hoagie-api/internal/interface/middleware"
)

// UserModule wires the user name search.
// Public: GET /api/user-search
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/user-search", searchLimiter, m.Handler.Search)
}
