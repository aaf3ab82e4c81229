package identity_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/itemshare/item-sharing-backend/internal/identity"
)

func setupRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)

	var seenID string
	r := gin.New()
	r.Use(identity.Required())
	r.GET("/ping", func(c *gin.Context) {
		seenID = identity.GetUserID(c)
		c.Status(http.StatusOK)
	})
	return r, &seenID
}

func TestRequired(t *testing.T) {
	t.Run("missing header is rejected", func(t *testing.T) {
		r, _ := setupRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-uuid header is rejected", func(t *testing.T) {
		r, _ := setupRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(identity.Header, "not-a-uuid")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("valid header reaches the handler", func(t *testing.T) {
		r, seenID := setupRouter()

		const id = "11111111-1111-1111-1111-111111111111"
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(identity.Header, id)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id, *seenID)
	})
}
