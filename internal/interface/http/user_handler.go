package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hoagiehub/hoagie-api/internal/application"
	"github.com/hoagiehub/hoagie-api/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Search GET /api/user-search?q=&limit=
// Results carry only public fields; the query is matched as a literal
// substring, case-insensitively.
func (h *UserHandler) Search(c *gin.Context) {
	query := c.Query("q")
	limit := intQuery(c, "limit", 10)
	users, err := h.Svc.Search(c.Request.Context(), query, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users, "users", nil)
}
