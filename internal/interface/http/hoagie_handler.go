package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hoagiehub/hoagie-api/internal/application"
	"github.com/hoagiehub/hoagie-api/pkg/response"
	"github.com/hoagiehub/hoagie-api/pkg/validation"
)

type HoagieHandler struct {
	Svc    *application.HoagieService
	Logger *logrus.Logger
}

func NewHoagieHandler(svc *application.HoagieService, logger *logrus.Logger) *HoagieHandler {
	return &HoagieHandler{Svc: svc, Logger: logger}
}

type createHoagieRequest struct {
	Name        string   `json:"name" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required,min=1,dive,required"`
	Picture     string   `json:"picture"`
	Creator     string   `json:"creator" binding:"required,uuid"`
}

type updateHoagieRequest struct {
	Name          *string  `json:"name"`
	Ingredients   []string `json:"ingredients"`
	Picture       *string  `json:"picture"`
	Collaborators []string `json:"collaborators"`
}

type addCollaboratorRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// Create POST /api/hoagies
func (h *HoagieHandler) Create(c *gin.Context) {
	var req createHoagieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	hoagie, err := h.Svc.Create(c.Request.Context(), application.CreateHoagieInput{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Picture:     req.Picture,
		CreatorID:   req.Creator,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, hoagie, "hoagie created", nil)
}

// List GET /api/hoagies?page=&limit=&creator=
func (h *HoagieHandler) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)
	creator := c.Query("creator")
	items, meta, err := h.Svc.List(c.Request.Context(), page, limit, creator)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items, "total": meta.Total}, "hoagies", meta)
}

// Get GET /api/hoagies/:id
func (h *HoagieHandler) Get(c *gin.Context) {
	hoagie, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hoagie, "hoagie", nil)
}

// Update PUT /api/hoagies/:id
func (h *HoagieHandler) Update(c *gin.Context) {
	var req updateHoagieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	hoagie, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateHoagieInput{
		Name:          req.Name,
		Ingredients:   req.Ingredients,
		Picture:       req.Picture,
		Collaborators: req.Collaborators,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hoagie, "hoagie updated", nil)
}

// Delete DELETE /api/hoagies/:id
func (h *HoagieHandler) Delete(c *gin.Context) {
	if _, err := h.Svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "hoagie deleted", nil)
}

// AddCollaborator POST /api/hoagies/:id/collaborators?userId=<requester>
func (h *HoagieHandler) AddCollaborator(c *gin.Context) {
	var req addCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	hoagie, err := h.Svc.AddCollaborator(c.Request.Context(), c.Param("id"), req.UserID, c.Query("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hoagie, "collaborator added", nil)
}

// RemoveCollaborator DELETE /api/hoagies/:id/collaborators/:userId?userId=<requester>
func (h *HoagieHandler) RemoveCollaborator(c *gin.Context) {
	hoagie, err := h.Svc.RemoveCollaborator(c.Request.Context(), c.Param("id"), c.Param("userId"), c.Query("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hoagie, "collaborator removed", nil)
}

// UploadPicture POST /api/hoagies/:id/picture (multipart field "picture")
func (h *HoagieHandler) UploadPicture(c *gin.Context) {
	fh, err := c.FormFile("picture")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing picture file", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable picture file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	hoagie, err := h.Svc.UploadPicture(c.Request.Context(), c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hoagie, "picture uploaded", nil)
}
