//go:build unit

package admincrud_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/user"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/admincrud"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/middleware"
	usecasemock "github.com/Zolbayar-hub/holisticweb/internal/mock/usecase"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/testutil/httptest"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

type note struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Tag   string `json:"tag"`
}

type noteRequest struct {
	Title string `json:"title" binding:"required,max=20"`
	Tag   string `json:"tag"`
}

// noteStore is a map-backed entity for exercising the generic handlers.
type noteStore struct {
	items      map[int64]*note
	nextID     int64
	lastParams queries.ListParams
	lastFilter admincrud.Filters
	lastActor  string
}

func newNoteStore() *noteStore {
	return &noteStore{items: map[int64]*note{
		1: {ID: 1, Title: "first", Tag: "a"},
		2: {ID: 2, Title: "second", Tag: "b"},
	}, nextID: 3}
}

func (s *noteStore) schema() admincrud.Schema[*note, noteRequest] {
	return admincrud.Schema[*note, noteRequest]{
		Entity:       "notes",
		SearchFields: []string{"title"},
		FilterFields: []string{"tag"},
		Formatters: map[string]admincrud.Formatter[*note]{
			"title": func(n *note) string { return "#" + n.Title },
		},
		List: func(_ context.Context, params queries.ListParams, f admincrud.Filters) ([]*note, error) {
			s.lastParams, s.lastFilter = params, f
			var out []*note
			for _, id := range []int64{1, 2} {
				if n, ok := s.items[id]; ok && (f["tag"] == "" || f["tag"] == n.Tag) {
					out = append(out, n)
				}
			}
			return out, nil
		},
		Get: func(_ context.Context, id int64) (*note, error) {
			n, ok := s.items[id]
			if !ok {
				return nil, errs.ErrServiceNotFound
			}
			return n, nil
		},
		Create: func(_ context.Context, actor string, req noteRequest) (int64, error) {
			if req.Title == "bad" {
				return 0, errs.Mark(errs.New("title is reserved"), errs.ErrDomainValidation)
			}
			s.lastActor = actor
			id := s.nextID
			s.nextID++
			s.items[id] = &note{ID: id, Title: req.Title, Tag: req.Tag}
			return id, nil
		},
		Update: func(_ context.Context, id int64, actor string, req noteRequest) error {
			n, ok := s.items[id]
			if !ok {
				return errs.ErrServiceNotFound
			}
			s.lastActor = actor
			n.Title, n.Tag = req.Title, req.Tag
			return nil
		},
		Delete: func(_ context.Context, id int64) error {
			if _, ok := s.items[id]; !ok {
				return errs.ErrServiceNotFound
			}
			delete(s.items, id)
			return nil
		},
	}
}

func setupRouter(t *testing.T, r interface{ Mount(*gin.RouterGroup) }, actor uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokens := usecasemock.NewMockTokenValidator(gomock.NewController(t))
	tokens.EXPECT().ValidateToken("admin-token").Return(actor, user.RoleAdmin, nil).AnyTimes()

	engine := gin.New()
	r.Mount(engine.Group("/admin", middleware.NewAuthMiddleware(tokens).OptionalAuth()))
	return engine
}

func TestResource_List(t *testing.T) {
	store := newNoteStore()
	router := setupRouter(t, admincrud.NewResource(store.schema()), uuid.Nil)

	t.Run("rows carry presented item and display columns", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/notes?q=%20fir%20&limit=1000&offset=-4", nil, "")

		var resp admincrud.ListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "#first", resp.Items[0].Display["title"])
		assert.Equal(t, admincrud.ListMeta{
			Entity:       "notes",
			Limit:        queries.MaxListLimit,
			Offset:       0,
			Count:        2,
			Search:       "fir",
			SearchFields: []string{"title"},
		}, resp.Meta)
		assert.Equal(t, "fir", store.lastParams.Search)
	})

	t.Run("only declared filters are forwarded", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/notes?tag=b&owner=x", nil, "")

		var resp admincrud.ListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		assert.Equal(t, admincrud.Filters{"tag": "b"}, store.lastFilter)
		assert.Equal(t, 1, resp.Meta.Count)
		assert.Equal(t, queries.DefaultListLimit, resp.Meta.Limit)
	})

	t.Run("search on an entity without search fields is rejected", func(t *testing.T) {
		schema := store.schema()
		schema.SearchFields = nil
		r := setupRouter(t, admincrud.NewResource(schema), uuid.Nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin/notes?q=x", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "search is not supported")

		rec = httptest.PerformRequest(t, r, http.MethodGet, "/admin/notes", nil, "")
		var resp admincrud.ListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		assert.NotNil(t, resp.Meta.SearchFields)
	})
}

func TestResource_GetCreateUpdateDelete(t *testing.T) {
	adminID := uuid.New()
	store := newNoteStore()
	router := setupRouter(t, admincrud.NewResource(store.schema()), adminID)

	t.Run("get", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/notes/1", nil, "admin-token")
		var got note
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, note{ID: 1, Title: "first", Tag: "a"}, got)
	})

	t.Run("get: invalid and unknown ids", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/notes/0", nil, "admin-token")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid id")

		rec = httptest.PerformRequest(t, router, http.MethodGet, "/admin/notes/99", nil, "admin-token")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Service not found")
	})

	t.Run("create passes the acting admin and returns the stored item", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/admin/notes", map[string]any{"title": "third", "tag": "c"}, "admin-token")
		var got note
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &got)
		assert.Equal(t, note{ID: 3, Title: "third", Tag: "c"}, got)
		assert.Equal(t, adminID.String(), store.lastActor)
	})

	t.Run("create: binding and domain validation", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/admin/notes", map[string]any{"tag": "c"}, "admin-token")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")

		rec = httptest.PerformRequest(t, router, http.MethodPost, "/admin/notes", map[string]any{"title": "bad"}, "admin-token")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "title is reserved")
	})

	t.Run("update", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPut, "/admin/notes/2", map[string]any{"title": "renamed", "tag": "b"}, "admin-token")
		var got note
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, "renamed", got.Title)

		rec = httptest.PerformRequest(t, router, http.MethodPut, "/admin/notes/42", map[string]any{"title": "x"}, "admin-token")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Service not found")
	})

	t.Run("delete", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodDelete, "/admin/notes/1", nil, "admin-token")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.NotContains(t, store.items, int64(1))

		rec = httptest.PerformRequest(t, router, http.MethodDelete, "/admin/notes/1", nil, "admin-token")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Service not found")
	})
}

func TestResource_ReadOnlySchemaMountsNoWriteRoutes(t *testing.T) {
	schema := newNoteStore().schema()
	schema.Create, schema.Update, schema.Delete = nil, nil, nil
	router := setupRouter(t, admincrud.NewResource(schema), uuid.Nil)

	rec := httptest.PerformRequest(t, router, http.MethodPost, "/admin/notes", map[string]any{"title": "x"}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.PerformRequest(t, router, http.MethodDelete, "/admin/notes/1", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
