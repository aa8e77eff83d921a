package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"order_manager/internal/apierror"
	"order_manager/internal/models"
	"order_manager/internal/services"

	"github.com/gin-gonic/gin"
)

func newTestRouter(authService services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api")
	api.Use(AuthMiddleware(authService))
	{
		api.GET("/open", func(c *gin.Context) {
			claims := getClaims(c)
			c.JSON(http.StatusOK, gin.H{"role": claims.RoleName})
		})

		planning := api.Group("/planning")
		planning.Use(RequireRoles(models.RolePlanning))
		planning.GET("/orders", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}
	return router
}

func testAuthService() services.AuthService {
	return services.NewAuthService(nil, nil, nil, nil, "test-secret", 1, 60)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := newTestRouter(testAuthService())

	req := httptest.NewRequest(http.MethodGet, "/api/open", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var body apierror.APIError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Code != apierror.CodeUnauthorized {
		t.Fatalf("expected unauthorized code, got %q", body.Code)
	}
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	router := newTestRouter(testAuthService())

	req := httptest.NewRequest(http.MethodGet, "/api/open", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewarePassesClaims(t *testing.T) {
	authService := testAuthService()
	router := newTestRouter(authService)

	token, err := authService.GenerateToken("u1", models.RoleDistributor, "d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["role"] != models.RoleDistributor {
		t.Fatalf("expected distributor role in claims, got %q", body["role"])
	}
}

func TestRequireRolesBlocksForeignRole(t *testing.T) {
	authService := testAuthService()
	router := newTestRouter(authService)

	token, err := authService.GenerateToken("u1", models.RoleDistributor, "d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/planning/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireRolesAllowsMatchingRole(t *testing.T) {
	authService := testAuthService()
	router := newTestRouter(authService)

	token, err := authService.GenerateToken("u1", models.RolePlanning, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/planning/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
