package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	aboutadapters "github.com/Billie0903/vina-ET-training-center/internal/feature/about/adapters"
	aboutentity "github.com/Billie0903/vina-ET-training-center/internal/feature/about/domain/entity"
	abouthandler "github.com/Billie0903/vina-ET-training-center/internal/feature/about/transport/handler"
	aboutusecase "github.com/Billie0903/vina-ET-training-center/internal/feature/about/usecase"
	authadapters "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/adapters"
	authentity "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/domain/entity"
	authhandler "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/transport/handler"
	authusecase "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/usecase"
	courseadapters "github.com/Billie0903/vina-ET-training-center/internal/feature/courses/adapters"
	courseentity "github.com/Billie0903/vina-ET-training-center/internal/feature/courses/domain/entity"
	coursehandler "github.com/Billie0903/vina-ET-training-center/internal/feature/courses/transport/handler"
	courseusecase "github.com/Billie0903/vina-ET-training-center/internal/feature/courses/usecase"
	newsadapters "github.com/Billie0903/vina-ET-training-center/internal/feature/news/adapters"
	newsentity "github.com/Billie0903/vina-ET-training-center/internal/feature/news/domain/entity"
	newshandler "github.com/Billie0903/vina-ET-training-center/internal/feature/news/transport/handler"
	newsusecase "github.com/Billie0903/vina-ET-training-center/internal/feature/news/usecase"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/upload/storage"
	uploadhandler "github.com/Billie0903/vina-ET-training-center/internal/feature/upload/transport/handler"
	jwtmw "github.com/Billie0903/vina-ET-training-center/internal/platform/jwt"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	tokens jwtmw.TokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authentity.User{}, &newsentity.NewsArticle{},
		&aboutentity.AboutSection{}, &courseentity.Course{},
	))

	tokens := jwtmw.NewTokenService("integration-test-secret", time.Hour)
	users := authadapters.NewUserGorm(db)
	store, err := storage.NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	authUC := authusecase.NewAuthUsecase(users, tokens)
	newsUC := newsusecase.NewNewsUsecase(newsadapters.NewNewsGorm(db))
	aboutUC := aboutusecase.NewAboutUsecase(aboutadapters.NewAboutGorm(db))
	courseUC := courseusecase.NewCourseUsecase(courseadapters.NewCourseGorm(db))

	r := NewRouter(Deps{
		Auth:       authhandler.NewAuthHandler(authUC),
		News:       newshandler.NewNewsHandler(newsUC, store),
		About:      abouthandler.NewAboutHandler(aboutUC),
		Courses:    coursehandler.NewCourseHandler(courseUC),
		Upload:     uploadhandler.NewUploadHandler(store),
		Tokens:     tokens,
		Users:      users,
		CORSOrigin: "http://localhost:3000",
		UploadsDir: store.Dir(),
	})
	return &testServer{router: r, db: db, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) seedAdmin(t *testing.T) (uint, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin-password"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &authentity.User{Name: "Admin", Email: "admin@example.com", Password: string(hash), Role: authentity.RoleAdmin}
	require.NoError(t, s.db.Create(admin).Error)
	token, err := s.tokens.Issue(admin.ID)
	require.NoError(t, err)
	return admin.ID, token
}

func TestRouter_AuthFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Alice", "email": "alice@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "user", login.User.Role)

	w = s.do(t, http.MethodGet, "/api/auth/profile", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "alice@example.com", profile["email"])
	assert.NotContains(t, profile, "password")

	// No token.
	w = s.do(t, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AdminRoutesRequireAdminRole(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Bob", "email": "bob@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	w = s.do(t, http.MethodGet, "/api/admin/news", reg.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Access denied. Admin privileges required.", resp["message"])
	assert.Equal(t, "user", resp["userRole"])

	w = s.do(t, http.MethodGet, "/api/admin/news", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func createArticle(t *testing.T, s *testServer, token string, fields map[string]string) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/news", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		News map[string]any `json:"news"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.News
}

func TestRouter_NewsLifecycle(t *testing.T) {
	s := newTestServer(t)
	_, token := s.seedAdmin(t)

	news := createArticle(t, s, token, map[string]string{
		"title":     "Hello, World!!!",
		"content":   "First post.",
		"excerpt":   "First.",
		"category":  "General",
		"published": "true",
	})
	assert.Equal(t, "hello-world", news["slug"])

	draft := createArticle(t, s, token, map[string]string{
		"title":    "Unpublished Draft",
		"content":  "Hidden.",
		"excerpt":  "Hidden.",
		"category": "General",
	})
	assert.Equal(t, "unpublished-draft", draft["slug"])

	t.Run("public listing excludes drafts", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/public/news", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Items []map[string]any `json:"items"`
			Total int64            `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "hello-world", resp.Items[0]["slug"])
		assert.Equal(t, int64(1), resp.Total)
	})

	t.Run("draft invisible by slug, admin listing sees it", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/public/news/article/unpublished-draft", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = s.do(t, http.MethodGet, "/api/admin/news", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Total int64 `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(2), resp.Total)
	})

	t.Run("each public fetch increments views", func(t *testing.T) {
		for want := 1; want <= 3; want++ {
			w := s.do(t, http.MethodGet, "/api/public/news/article/hello-world", "", nil)
			require.Equal(t, http.StatusOK, w.Code)

			var article map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &article))
			assert.Equal(t, float64(want), article["views"])
		}
	})

	t.Run("delete", func(t *testing.T) {
		id := fmt.Sprintf("%.0f", draft["id"].(float64))
		w := s.do(t, http.MethodDelete, "/api/admin/news/"+id, token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = s.do(t, http.MethodDelete, "/api/admin/news/"+id, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_AboutLifecycle(t *testing.T) {
	s := newTestServer(t)
	_, token := s.seedAdmin(t)

	w := s.do(t, http.MethodPost, "/api/admin/about/section", token, gin.H{
		"section": "mission", "title": "Our Mission", "content": "Teach well.",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Upserting the same key again overwrites rather than duplicating.
	w = s.do(t, http.MethodPost, "/api/admin/about/section", token, gin.H{
		"section": "mission", "title": "Revised Mission", "content": "Teach better.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/public/about", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var content map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &content))
	require.Len(t, content, 1)
	assert.Equal(t, "Revised Mission", content["mission"]["title"])

	t.Run("bulk update is atomic", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/admin/about/bulk-update", token, gin.H{
			"sections": []gin.H{
				{"section": "hero", "title": "t", "content": "c"},
				{"section": "not-a-real-section", "title": "t", "content": "c"},
			},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// The invalid batch left no trace.
		var count int64
		require.NoError(t, s.db.Model(&aboutentity.AboutSection{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("non-array body rejected", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/admin/about/bulk-update", token, gin.H{
			"sections": "oops",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Sections must be an array")
	})
}

func TestRouter_CoursesAccess(t *testing.T) {
	s := newTestServer(t)
	_, token := s.seedAdmin(t)

	body := gin.H{
		"title": "IELTS Prep", "description": "Exam prep", "instructor": "Teacher",
		"duration": "8 weeks", "price": 199.99, "category": "English",
		"startDate": time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), "maxStudents": 20,
	}

	// Writes require authentication.
	w := s.do(t, http.MethodPost, "/api/courses", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/courses", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var course courseentity.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &course))
	assert.Equal(t, courseentity.DefaultImageURL, course.ImageURL)

	// Reads are public.
	w = s.do(t, http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var courses []courseentity.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	assert.Len(t, courses, 1)
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
