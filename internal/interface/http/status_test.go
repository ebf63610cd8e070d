package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hoagiehub/hoagie-api/internal/domain/apperr"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{apperr.Invalid("bad field"), http.StatusBadRequest},
		{apperr.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperr.ErrForbidden, http.StatusForbidden},
		{apperr.ErrNotFound, http.StatusNotFound},
		{apperr.ErrDuplicateEmail, http.StatusConflict},
		{apperr.ErrUnavailable, http.StatusServiceUnavailable},
		{errors.New("something broke"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		writeError(ctx, c.err)
		if w.Code != c.want {
			t.Errorf("writeError(%v) = %d, want %d", c.err, w.Code, c.want)
		}
	}
}
