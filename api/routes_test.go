package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/storage"
)

type testEnv struct {
	router *chi.Mux
	db     database.Database
	store  *storage.MemoryStore
	user   *models.User
	token  string
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(gormDB))
	db := database.New(gormDB)

	user := &models.User{Name: "Operator", Email: "op@example.com", Occupation: "Engineer"}
	require.NoError(t, db.UserRepo().Add(user))

	store := storage.NewMemoryStore()

	router := chi.NewRouter()
	setupRoutes(router, initializeHandlers(db, store), newAuthMiddleware(testSecret))

	return testEnv{
		router: router,
		db:     db,
		store:  store,
		user:   user,
		token:  signedToken(t, user.ID.String(), testSecret),
	}
}

func (e testEnv) do(t *testing.T, req *http.Request, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func multipartBody(t *testing.T, values map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, value := range values {
		require.NoError(t, w.WriteField(field, value))
	}
	for field, data := range files {
		part, err := w.CreateFormFile(field, field+".jpg")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestDashboardRequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/projects", nil), false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateProjectEndToEnd(t *testing.T) {
	env := setupTestEnv(t)

	body, contentType := multipartBody(t,
		map[string]string{
			"title":       "Portfolio Site",
			"description": "A site about me",
			"tags[]":      "go",
			"featured":    "1",
		},
		map[string][]byte{"image": []byte("imagebytes")},
	)
	req := httptest.NewRequest(http.MethodPost, "/project", body)
	req.Header.Set("Content-Type", contentType)

	rec := env.do(t, req, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var project models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
	assert.Equal(t, "Portfolio Site", project.Name)
	assert.True(t, project.Featured)
	assert.Equal(t, env.user.ID, project.UserID)
	require.NotNil(t, project.Image)
	assert.Equal(t, 1, env.store.Len())

	// The new project shows up in the list.
	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/projects", nil), true)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Projects []models.Project `json:"projects"`
		Total    int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, 1, listing.Total)
}

func TestCreateProjectValidationResponse(t *testing.T) {
	env := setupTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{"title": ""}, nil)
	req := httptest.NewRequest(http.MethodPost, "/project", body)
	req.Header.Set("Content-Type", contentType)

	rec := env.do(t, req, true)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Status string            `json:"status"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Status)
	assert.Contains(t, resp.Errors, "title")
	assert.Contains(t, resp.Errors, "description")
}

func TestProjectClearImageViaForm(t *testing.T) {
	env := setupTestEnv(t)

	// Create with an image.
	body, contentType := multipartBody(t,
		map[string]string{"title": "Site", "description": "v1"},
		map[string][]byte{"image": []byte("imagebytes")},
	)
	req := httptest.NewRequest(http.MethodPost, "/project", body)
	req.Header.Set("Content-Type", contentType)
	rec := env.do(t, req, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
	require.NotNil(t, project.Image)

	// Update with an empty image field, which means clear.
	body, contentType = multipartBody(t,
		map[string]string{"title": "Site", "description": "v1", "image": ""},
		nil,
	)
	req = httptest.NewRequest(http.MethodPut, "/project/"+project.ID.String(), body)
	req.Header.Set("Content-Type", contentType)
	rec = env.do(t, req, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Nil(t, updated.Image)
	assert.Equal(t, 0, env.store.Len())
}

func TestUnknownProjectIs404(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/project/6b9e1b9e-0000-4000-8000-000000000000", nil), true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidProjectIDIs400(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/project/not-a-uuid", nil), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicPortfolio(t *testing.T) {
	env := setupTestEnv(t)

	// Seed a published and an unpublished skill.
	require.NoError(t, env.db.SkillRepo().Add(&models.Skill{Name: "Go", Level: 90, Published: true}))
	require.NoError(t, env.db.SkillRepo().Add(&models.Skill{Name: "Secret", Level: 10}))

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/portfolio", nil), false)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		About  *models.About  `json:"about"`
		Skills []models.Skill `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// No about row yet; the public payload carries null rather than an error.
	assert.Nil(t, resp.About)
	require.Len(t, resp.Skills, 1)
	assert.Equal(t, "Go", resp.Skills[0].Name)
}
