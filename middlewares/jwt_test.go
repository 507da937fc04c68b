package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"studio/middlewares"
	"studio/utils"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newProtectedRouter() *gin.Engine {
	router := gin.New()
	router.GET("/ping", middlewares.JWT(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return router
}

func get(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWT(t *testing.T) {
	t.Parallel()
	router := newProtectedRouter()

	t.Run("accepts a valid token and exposes claims", func(t *testing.T) {
		t.Parallel()
		token, err := utils.SignedToken(testSecret, "admin-1", "admin")
		require.NoError(t, err)

		w := get(router, "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"username":"admin"`)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, http.StatusUnauthorized, get(router, "").Code)
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, http.StatusUnauthorized, get(router, "Token abc").Code)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		t.Parallel()
		token, err := utils.SignedToken("other-secret", "admin-1", "admin")
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, get(router, "Bearer "+token).Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		t.Parallel()
		claims := &utils.SignedDetails{
			UserID:   "admin-1",
			Username: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, get(router, "Bearer "+expired).Code)
	})

	t.Run("rejects an unsigned forged token", func(t *testing.T) {
		t.Parallel()
		forged, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"userId": "admin-1", "username": "admin",
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, get(router, "Bearer "+forged).Code)
	})
}
