package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hoagiehub/hoagie-api/internal/application"
	"github.com/hoagiehub/hoagie-api/pkg/response"
	"github.com/hoagiehub/hoagie-api/pkg/validation"
)

type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

type createCommentRequest struct {
	Text   string `json:"text" binding:"required"`
	User   string `json:"user" binding:"required,uuid"`
	Hoagie string `json:"hoagie" binding:"required,uuid"`
}

type updateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	comment, err := h.Svc.Create(c.Request.Context(), req.Text, req.User, req.Hoagie)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, comment, "comment created", nil)
}

// List GET /api/comments?hoagie=&page=&limit=
func (h *CommentHandler) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)
	hoagieID := c.Query("hoagie")
	items, meta, err := h.Svc.List(c.Request.Context(), hoagieID, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items, "total": meta.Total}, "comments", meta)
}

// Get GET /api/comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
	comment, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, comment, "comment", nil)
}

// Update PUT /api/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	comment, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, comment, "comment updated", nil)
}

// Delete DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if _, err := h.Svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "comment deleted", nil)
}
