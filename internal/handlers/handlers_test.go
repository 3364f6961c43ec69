package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/siteguard/siteguard-api/internal/middleware"
	"github.com/siteguard/siteguard-api/internal/models"
	"github.com/siteguard/siteguard-api/internal/repository"
	"github.com/siteguard/siteguard-api/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine

	authService      *services.AuthService
	workspaceService *services.WorkspaceService
}

// envelope mirrors the success/error response shapes for assertions.
type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Workspace{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)

	authService := services.NewAuthService(userRepo, "test-secret", "siteguard-test", time.Hour)
	workspaceService := services.NewWorkspaceService(workspaceRepo)
	resourceService := services.NewResourceService(workspaceRepo)
	architectureService := services.NewArchitectureService(workspaceRepo)
	safetyService := services.NewSafetyService(workspaceRepo)

	authHandler := NewAuthHandler(authService)
	workspaceHandler := NewWorkspaceHandler(workspaceService)
	resourceHandler := NewResourceHandler(resourceService)
	architectureHandler := NewArchitectureHandler(architectureService)
	safetyHandler := NewSafetyHandler(safetyService)

	r := gin.New()

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	workspaces := r.Group("/workspaces")
	workspaces.Use(middleware.RequireAuth(authService))
	{
		workspaces.GET("", workspaceHandler.List)
		workspaces.POST("", workspaceHandler.Create)
		workspaces.GET("/:id", workspaceHandler.Get)
		workspaces.PUT("/:id", workspaceHandler.Update)
		workspaces.DELETE("/:id", workspaceHandler.Delete)
		workspaces.PATCH("/:id/progress", workspaceHandler.SetProgress)
		workspaces.PATCH("/:id/status", workspaceHandler.ToggleStatus)

		workspaces.GET("/:id/resources", resourceHandler.List)
		workspaces.POST("/:id/resources", resourceHandler.Add)
		workspaces.PUT("/:id/resources", resourceHandler.BulkReplace)
		workspaces.GET("/:id/resources/statistics", resourceHandler.Statistics)
		workspaces.GET("/:id/resources/:resourceId", resourceHandler.Get)
		workspaces.PUT("/:id/resources/:resourceId", resourceHandler.Update)
		workspaces.DELETE("/:id/resources/:resourceId", resourceHandler.Delete)
		workspaces.PATCH("/:id/resources/:resourceId/quantity", resourceHandler.UpdateQuantity)

		workspaces.GET("/:id/architecture", architectureHandler.Get)
		workspaces.POST("/:id/architecture", architectureHandler.Save)
		workspaces.PUT("/:id/architecture", architectureHandler.Update)
		workspaces.DELETE("/:id/architecture", architectureHandler.Delete)
		workspaces.GET("/:id/architecture/sections", architectureHandler.ListSections)
		workspaces.POST("/:id/architecture/sections", architectureHandler.AddSection)
		workspaces.GET("/:id/architecture/materials", architectureHandler.ListMaterials)
		workspaces.POST("/:id/architecture/materials", architectureHandler.AddMaterial)
		workspaces.GET("/:id/architecture/stages", architectureHandler.ListStages)
		workspaces.POST("/:id/architecture/stages", architectureHandler.AddStage)

		workspaces.GET("/:id/safety-reports", safetyHandler.List)
		workspaces.POST("/:id/safety-reports", safetyHandler.Save)
		workspaces.GET("/:id/safety-reports/:reportId", safetyHandler.Get)
	}

	return &testEnv{
		db:               db,
		router:           r,
		authService:      authService,
		workspaceService: workspaceService,
	}
}

// do performs a JSON request against the test router.
func (env *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	env := decodeEnvelope(t, w)
	require.Equal(t, "success", env.Status)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// signupUser registers a user through the API and returns their token.
func (env *testEnv) signupUser(t *testing.T, name, email string) string {
	t.Helper()

	w := env.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeData(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createWorkspace creates a workspace through the API and returns its id.
func (env *testEnv) createWorkspace(t *testing.T, token, name string) uint64 {
	t.Helper()

	w := env.do(t, http.MethodPost, "/workspaces", token, map[string]string{
		"name":     name,
		"location": "Springfield",
		"stage":    "Foundation",
		"type":     "Residential",
		"budget":   "1,500,000 USD",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID uint64 `json:"id"`
	}
	decodeData(t, w, &resp)
	require.NotZero(t, resp.ID)
	return resp.ID
}
