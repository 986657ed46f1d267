package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		id, _ := PatientIDFromContext(c)
		c.String(http.StatusOK, id)
	})
	return r
}

func get(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPatientIdentity(t *testing.T) {
	const secret = "test-secret"
	token, err := utils.GenerateToken(secret, "patient-42", time.Hour)
	require.NoError(t, err)
	foreign, err := utils.GenerateToken("other-secret", "patient-42", time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateToken(secret, "patient-42", -time.Hour)
	require.NoError(t, err)

	optional := newRouter(PatientIdentity(secret, false))
	required := newRouter(PatientIdentity(secret, true))

	w := get(optional, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = get(optional, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "patient-42", w.Body.String())

	for name, header := range map[string]string{
		"wrong secret": "Bearer " + foreign,
		"expired":      "Bearer " + expired,
		"not bearer":   "Basic abc",
	} {
		w = get(optional, map[string]string{"Authorization": header})
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}

	w = get(required, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newRouter(RateLimitMiddleware(2))

	ip := map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}
	assert.Equal(t, http.StatusOK, get(r, ip).Code)
	assert.Equal(t, http.StatusOK, get(r, ip).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, ip).Code)

	// A different client has its own budget.
	assert.Equal(t, http.StatusOK, get(r, map[string]string{"X-Real-IP": "10.0.0.9"}).Code)
}

func TestRateLimiterStoreSweepsIdleClients(t *testing.T) {
	store := newRateLimiterStore(10)
	start := time.Now()
	store.lastSweep = start
	store.getLimiter("a", start)
	store.getLimiter("b", start.Add(idleLimiterTTL))

	store.getLimiter("c", start.Add(idleLimiterTTL+time.Minute))
	assert.NotContains(t, store.visitors, "a")
	assert.Contains(t, store.visitors, "b")
	assert.Contains(t, store.visitors, "c")
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) {
		_, ok := c.Get("logger")
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))
}
