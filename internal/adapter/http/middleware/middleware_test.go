package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/internal/core/ports/mocks"
	"github.com/Bhatia06/MEWallet/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := gin.New()
	r.Use(JWTAuth(mocks.NewMockTokenService(ctrl), logger.Nop()))
	r.GET("/p", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_002")
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := gin.New()
	r.Use(JWTAuth(mocks.NewMockTokenService(ctrl), logger.Nop()))
	r.GET("/p", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockToken := mocks.NewMockTokenService(ctrl)
	mockToken.EXPECT().Validate("bad").Return(nil, errors.New("expired"))

	r := gin.New()
	r.Use(JWTAuth(mockToken, logger.Nop()))
	r.GET("/p", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_SetsClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockToken := mocks.NewMockTokenService(ctrl)
	mockToken.EXPECT().Validate("good").Return(&ports.TokenClaims{
		Subject: "UR4D5E6F",
		Role:    domain.RoleUser,
	}, nil)

	var gotSubject string
	var gotRole domain.Role

	r := gin.New()
	r.Use(JWTAuth(mockToken, logger.Nop()))
	r.GET("/p", func(c *gin.Context) {
		gotSubject, _ = Subject(c)
		role, _ := c.Get(CtxRole)
		gotRole = role.(domain.Role)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "UR4D5E6F", gotSubject)
	assert.Equal(t, domain.RoleUser, gotRole)
}

func TestRequireRole_Mismatch(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(CtxRole, domain.RoleUser) })
	r.Use(RequireRole(domain.RoleMerchant))
	r.GET("/p", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestRequireRole_NoClaims(t *testing.T) {
	r := gin.New()
	r.Use(RequireRole(domain.RoleMerchant))
	r.GET("/p", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireOwner_Match(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(CtxSubject, "UR4D5E6F") })
	r.GET("/u/:user_id", RequireOwner("user_id"), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/u/UR4D5E6F", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireOwner_Mismatch(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(CtxSubject, "UR4D5E6F") })
	r.GET("/u/:user_id", RequireOwner("user_id"), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/u/UR999999", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireOwner_CaseSensitive(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(CtxSubject, "UR4D5E6F") })
	r.GET("/u/:user_id", RequireOwner("user_id"), func(c *gin.Context) { c.Status(http.StatusOK) })

	// Identity comparison is byte-for-byte; a lowercased ID is someone else.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/u/ur4d5e6f", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	var requestID string

	r := gin.New()
	r.Use(RequestLogger(logger.Nop()))
	r.GET("/p", func(c *gin.Context) {
		id, _ := c.Get("request_id")
		requestID, _ = id.(string)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, requestID)
}

func TestRecovery_CatchesPanic(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.Nop()))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}

func TestMaxBodySize_Exceeded(t *testing.T) {
	r := gin.New()
	r.Use(MaxBodySize(16))
	r.POST("/p", func(c *gin.Context) {
		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	body := strings.NewReader(`{"data":"` + strings.Repeat("x", 64) + `"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/p", body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestMaxBodySize_Allowed(t *testing.T) {
	r := gin.New()
	r.Use(MaxBodySize(1024))
	r.POST("/p", func(c *gin.Context) {
		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/p", strings.NewReader(`{"ok":true}`)))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetrics_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/p", func(c *gin.Context) { c.Status(http.StatusOK) })

	start := time.Now()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Less(t, time.Since(start), time.Second)
}
