package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsRequestsPerRoute(t *testing.T) {
	m := New("test")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	count := testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/ping", "200"))
	assert.Equal(t, float64(3), count)
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	m := New("test")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.Middleware())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	count := testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404"))
	assert.Equal(t, float64(1), count)
}

func TestHandler_ServesRegistry(t *testing.T) {
	m := New("test")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
