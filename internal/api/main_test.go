package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jxchen21/tastebuds-backend/internal/api"
	"github.com/jxchen21/tastebuds-backend/internal/models"
	"github.com/jxchen21/tastebuds-backend/internal/router"
	"github.com/jxchen21/tastebuds-backend/internal/service"
	"github.com/jxchen21/tastebuds-backend/internal/testhelpers"
	"github.com/jxchen21/tastebuds-backend/internal/types"
)

// testApp is the fully wired application over an in-memory database
// and a scriptable recipe source, without Redis.
type testApp struct {
	engine *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
	source *testhelpers.FakeRecipeSource
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	source := &testhelpers.FakeRecipeSource{}

	authService := service.NewAuthService(db, "test-secret")
	handlers := router.Handlers{
		Auth: api.NewAuthHandler(authService),
		Recipe: api.NewRecipeHandler(
			service.NewSearchService(source),
			service.NewRatingService(db),
			service.NewSavedRecipeService(db, source),
			source,
		),
		Planner:  api.NewPlannerHandler(service.NewPlannerService(db)),
		Shopping: api.NewShoppingHandler(service.NewShoppingService(db, source)),
		Admin:    api.NewAdminHandler(service.NewAdminService(db)),
	}

	return &testApp{
		engine: router.SetupRouter(handlers, authService, nil),
		db:     db,
		auth:   authService,
		source: source,
	}
}

// login creates a user and returns a bearer token for it.
func (a *testApp) login(t *testing.T, username string, isStaff bool) (*models.User, string) {
	t.Helper()
	user := testhelpers.CreateTestUser(t, a.db, username, isStaff)
	token, err := a.auth.GenerateToken(&types.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		IsStaff:  user.IsStaff,
	})
	require.NoError(t, err)
	return user, token
}

func (a *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
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
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
