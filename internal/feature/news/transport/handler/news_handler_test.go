package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/domain"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/domain/entity"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/news/usecase"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/upload/storage"
	jwtmw "github.com/Billie0903/vina-ET-training-center/internal/platform/jwt"
)

// mockNewsUsecase is a mock implementation of the NewsUsecase interface.
type mockNewsUsecase struct {
	ListPublicFunc      func(ctx context.Context, page, limit int, category string, featuredOnly bool) (*usecase.ListResult, error)
	GetPublicBySlugFunc func(ctx context.Context, slug string) (*entity.NewsArticle, error)
	ListAdminFunc       func(ctx context.Context, page, limit int, category string, published *bool) (*usecase.ListResult, error)
	GetAdminByIDFunc    func(ctx context.Context, id uint) (*entity.NewsArticle, error)
	CreateFunc          func(ctx context.Context, in usecase.Input, authorID uint, image *entity.Image) (*entity.NewsArticle, error)
	UpdateFunc          func(ctx context.Context, id uint, in usecase.Input, image *entity.Image) (*entity.NewsArticle, error)
	DeleteFunc          func(ctx context.Context, id uint) error
}

func (m *mockNewsUsecase) ListPublic(ctx context.Context, page, limit int, category string, featuredOnly bool) (*usecase.ListResult, error) {
	return m.ListPublicFunc(ctx, page, limit, category, featuredOnly)
}

func (m *mockNewsUsecase) GetPublicBySlug(ctx context.Context, slug string) (*entity.NewsArticle, error) {
	return m.GetPublicBySlugFunc(ctx, slug)
}

func (m *mockNewsUsecase) ListAdmin(ctx context.Context, page, limit int, category string, published *bool) (*usecase.ListResult, error) {
	return m.ListAdminFunc(ctx, page, limit, category, published)
}

func (m *mockNewsUsecase) GetAdminByID(ctx context.Context, id uint) (*entity.NewsArticle, error) {
	return m.GetAdminByIDFunc(ctx, id)
}

func (m *mockNewsUsecase) Create(ctx context.Context, in usecase.Input, authorID uint, image *entity.Image) (*entity.NewsArticle, error) {
	return m.CreateFunc(ctx, in, authorID, image)
}

func (m *mockNewsUsecase) Update(ctx context.Context, id uint, in usecase.Input, image *entity.Image) (*entity.NewsArticle, error) {
	return m.UpdateFunc(ctx, id, in, image)
}

func (m *mockNewsUsecase) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

// mockImageStore is a mock implementation of the ImageStore interface.
type mockImageStore struct {
	SaveFunc func(fh *multipart.FileHeader) (*storage.SavedFile, error)
}

func (m *mockImageStore) Save(fh *multipart.FileHeader) (*storage.SavedFile, error) {
	return m.SaveFunc(fh)
}

func newsRequest(t *testing.T, method, target string, body *bytes.Buffer, contentType string) (*gin.Engine, *httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return r, httptest.NewRecorder(), req
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestNewsHandler_ListPublic(t *testing.T) {
	h := NewNewsHandler(&mockNewsUsecase{
		ListPublicFunc: func(ctx context.Context, page, limit int, category string, featuredOnly bool) (*usecase.ListResult, error) {
			assert.Equal(t, 2, page)
			assert.Equal(t, 5, limit)
			assert.Equal(t, "General", category)
			assert.True(t, featuredOnly)
			return &usecase.ListResult{
				Items:       []entity.NewsArticle{{ID: 1, Title: "A", Slug: "a"}},
				Total:       11,
				TotalPages:  3,
				CurrentPage: 2,
			}, nil
		},
	}, nil)

	r, w, req := newsRequest(t, http.MethodGet, "/api/public/news?page=2&limit=5&category=General&featured=true", nil, "")
	r.GET("/api/public/news", h.ListPublic)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(11), resp["total"])
	assert.Equal(t, float64(3), resp["totalPages"])
	assert.Equal(t, float64(2), resp["currentPage"])
	items, ok := resp["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestNewsHandler_GetBySlug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h := NewNewsHandler(&mockNewsUsecase{
			GetPublicBySlugFunc: func(ctx context.Context, slug string) (*entity.NewsArticle, error) {
				assert.Equal(t, "hello-world", slug)
				return &entity.NewsArticle{ID: 1, Slug: slug, Views: 3}, nil
			},
		}, nil)

		r, w, req := newsRequest(t, http.MethodGet, "/api/public/news/article/hello-world", nil, "")
		r.GET("/api/public/news/article/:slug", h.GetBySlug)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"views":3`)
	})

	t.Run("not found", func(t *testing.T) {
		h := NewNewsHandler(&mockNewsUsecase{
			GetPublicBySlugFunc: func(ctx context.Context, slug string) (*entity.NewsArticle, error) {
				return nil, domain.ErrNewsNotFound
			},
		}, nil)

		r, w, req := newsRequest(t, http.MethodGet, "/api/public/news/article/missing", nil, "")
		r.GET("/api/public/news/article/:slug", h.GetBySlug)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "News article not found")
	})
}

func TestNewsHandler_ListAdmin_PublishedQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   *bool
	}{
		{name: "absent leaves filter nil", target: "/api/admin/news", want: nil},
		{name: "published=true", target: "/api/admin/news?published=true", want: boolPtr(true)},
		{name: "published=false", target: "/api/admin/news?published=false", want: boolPtr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewNewsHandler(&mockNewsUsecase{
				ListAdminFunc: func(ctx context.Context, page, limit int, category string, published *bool) (*usecase.ListResult, error) {
					if tt.want == nil {
						assert.Nil(t, published)
					} else {
						require.NotNil(t, published)
						assert.Equal(t, *tt.want, *published)
					}
					return &usecase.ListResult{Items: []entity.NewsArticle{}, CurrentPage: 1}, nil
				},
			}, nil)

			r, w, req := newsRequest(t, http.MethodGet, tt.target, nil, "")
			r.GET("/api/admin/news", h.ListAdmin)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func boolPtr(b bool) *bool { return &b }

func TestNewsHandler_Create(t *testing.T) {
	t.Run("multipart fields are normalized", func(t *testing.T) {
		h := NewNewsHandler(&mockNewsUsecase{
			CreateFunc: func(ctx context.Context, in usecase.Input, authorID uint, image *entity.Image) (*entity.NewsArticle, error) {
				assert.Equal(t, uint(9), authorID)
				assert.Equal(t, "New Course", in.Title)
				assert.True(t, in.Published)
				assert.False(t, in.Featured)
				assert.Equal(t, []string{"go", "web"}, in.Tags)
				assert.Nil(t, image)
				return &entity.NewsArticle{ID: 1, Title: in.Title, Slug: "new-course"}, nil
			},
		}, nil)

		body, contentType := multipartForm(t, map[string]string{
			"title":     "New Course",
			"content":   "content",
			"excerpt":   "excerpt",
			"category":  "General",
			"published": "true",
			"tags":      `["go","web"]`,
		})

		r, w, req := newsRequest(t, http.MethodPost, "/api/admin/news", body, contentType)
		r.POST("/api/admin/news", func(c *gin.Context) {
			c.Set(jwtmw.ContextUserID, uint(9))
		}, h.Create)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "News article created successfully")
		assert.Contains(t, w.Body.String(), "new-course")
	})

	t.Run("validation error", func(t *testing.T) {
		h := NewNewsHandler(&mockNewsUsecase{
			CreateFunc: func(ctx context.Context, in usecase.Input, authorID uint, image *entity.Image) (*entity.NewsArticle, error) {
				return nil, domain.ErrValidation
			},
		}, nil)

		body, contentType := multipartForm(t, map[string]string{"title": "only"})

		r, w, req := newsRequest(t, http.MethodPost, "/api/admin/news", body, contentType)
		r.POST("/api/admin/news", h.Create)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNewsHandler_Update(t *testing.T) {
	h := NewNewsHandler(&mockNewsUsecase{
		UpdateFunc: func(ctx context.Context, id uint, in usecase.Input, image *entity.Image) (*entity.NewsArticle, error) {
			assert.Equal(t, uint(7), id)
			return &entity.NewsArticle{ID: id, Title: in.Title}, nil
		},
	}, nil)

	body, contentType := multipartForm(t, map[string]string{
		"title": "Edited", "content": "c", "excerpt": "e", "category": "General",
	})

	r, w, req := newsRequest(t, http.MethodPut, "/api/admin/news/7", body, contentType)
	r.PUT("/api/admin/news/:id", h.Update)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "News article updated successfully")

	t.Run("invalid id", func(t *testing.T) {
		r, w, req := newsRequest(t, http.MethodPut, "/api/admin/news/abc", nil, "")
		r.PUT("/api/admin/news/:id", h.Update)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid article id")
	})
}

func TestNewsHandler_Delete(t *testing.T) {
	t.Run("existing article", func(t *testing.T) {
		h := NewNewsHandler(&mockNewsUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error {
				assert.Equal(t, uint(3), id)
				return nil
			},
		}, nil)

		r, w, req := newsRequest(t, http.MethodDelete, "/api/admin/news/3", nil, "")
		r.DELETE("/api/admin/news/:id", h.Delete)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "News article deleted successfully")
	})

	t.Run("missing article", func(t *testing.T) {
		h := NewNewsHandler(&mockNewsUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error {
				return domain.ErrNewsNotFound
			},
		}, nil)

		r, w, req := newsRequest(t, http.MethodDelete, "/api/admin/news/99", nil, "")
		r.DELETE("/api/admin/news/:id", h.Delete)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
