package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Govind-619/OrderLadder/utils"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(utils.SessionMiddleware("session-secret", false))
	router.GET("/admin/whoami", AdminAuthMiddleware("jwt-secret", "Admin@Example.com"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": c.GetString(AdminContextKey)})
	})
	return router
}

func TestAdminAuthMiddleware(t *testing.T) {
	router := newAuthRouter()

	token, err := utils.GenerateAdminToken("admin@example.com", "jwt-secret")
	require.NoError(t, err)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  http.MethodGet,
		Path:    "/admin/whoami",
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})
	utils.AssertResponse(t, resp, http.StatusOK, map[string]interface{}{"admin": "admin@example.com"})
}

func TestAdminAuthMiddlewareRejects(t *testing.T) {
	router := newAuthRouter()

	wrongSecret, err := utils.GenerateAdminToken("admin@example.com", "other-secret")
	require.NoError(t, err)
	wrongAdmin, err := utils.GenerateAdminToken("someone@example.com", "jwt-secret")
	require.NoError(t, err)

	for name, header := range map[string]string{
		"no header":    "",
		"no bearer":    wrongAdmin,
		"wrong secret": "Bearer " + wrongSecret,
		"wrong admin":  "Bearer " + wrongAdmin,
	} {
		t.Run(name, func(t *testing.T) {
			headers := map[string]string{}
			if header != "" {
				headers["Authorization"] = header
			}
			resp := utils.MakeTestRequest(t, router, utils.TestRequest{Method: http.MethodGet, Path: "/admin/whoami", Headers: headers})
			utils.AssertErrorCode(t, resp, http.StatusUnauthorized, utils.ReasonUnauthorized)
			assert.Equal(t, utils.ErrLoginRequired, resp.Body["error"])
		})
	}
}
