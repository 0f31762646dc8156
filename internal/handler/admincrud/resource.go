// Package admincrud mounts back-office CRUD endpoints from a declarative schema,
// so every managed entity shares one set of list/get/create/update/delete handlers.
package admincrud

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zolbayar-hub/holisticweb/internal/handler/httperr"
	"github.com/Zolbayar-hub/holisticweb/internal/handler/middleware"
	"github.com/Zolbayar-hub/holisticweb/internal/pkg/errs"
	"github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"
)

var (
	errInvalidID          = errs.New("invalid id")
	errSearchNotSupported = errs.New("search is not supported for this entity")
)

// Filters carries the schema's filter query parameters that were present on the request.
type Filters map[string]string

// Formatter renders one column of a list row for display.
type Formatter[T any] func(item T) string

// Schema describes one admin-managed entity. T is the read view, R the write request.
// Nil Create/Update/Delete functions leave the matching route unmounted.
type Schema[T any, R any] struct {
	Entity       string
	SearchFields []string
	FilterFields []string
	Formatters   map[string]Formatter[T]

	List    func(ctx context.Context, params queries.ListParams, filters Filters) ([]T, error)
	Get     func(ctx context.Context, id int64) (T, error)
	Create  func(ctx context.Context, actor string, req R) (int64, error)
	Update  func(ctx context.Context, id int64, actor string, req R) error
	Delete  func(ctx context.Context, id int64) error
	Present func(item T) any
}

type Resource[T any, R any] struct {
	schema Schema[T, R]
}

func NewResource[T any, R any](schema Schema[T, R]) *Resource[T, R] {
	if schema.Present == nil {
		schema.Present = func(item T) any { return item }
	}
	return &Resource[T, R]{schema: schema}
}

func (r *Resource[T, R]) Entity() string {
	return r.schema.Entity
}

// Row is one list entry: the presented item plus its formatted columns.
type Row struct {
	Item    any               `json:"item"`
	Display map[string]string `json:"display,omitempty"`
}

type ListMeta struct {
	Entity       string   `json:"entity"`
	Limit        int      `json:"limit"`
	Offset       int      `json:"offset"`
	Count        int      `json:"count"`
	Search       string   `json:"search,omitempty"`
	SearchFields []string `json:"search_fields"`
}

type ListResponse struct {
	Items []Row    `json:"items"`
	Meta  ListMeta `json:"meta"`
}

// Mount registers the entity under g as /<entity> and /<entity>/:id.
func (r *Resource[T, R]) Mount(g *gin.RouterGroup) {
	base := "/" + r.schema.Entity
	g.GET(base, r.list)
	g.GET(base+"/:id", r.get)
	if r.schema.Create != nil {
		g.POST(base, r.create)
	}
	if r.schema.Update != nil {
		g.PUT(base+"/:id", r.update)
	}
	if r.schema.Delete != nil {
		g.DELETE(base+"/:id", r.delete)
	}
}

func (r *Resource[T, R]) list(c *gin.Context) {
	params := queries.ListParams{
		Search: strings.TrimSpace(c.Query("q")),
		Limit:  queryInt(c, "limit", queries.DefaultListLimit),
		Offset: queryInt(c, "offset", 0),
	}.Normalize()
	if params.Search != "" && len(r.schema.SearchFields) == 0 {
		httperr.Abort(c, http.StatusBadRequest, errSearchNotSupported, errSearchNotSupported.Error())
		return
	}

	filters := Filters{}
	for _, f := range r.schema.FilterFields {
		if v := strings.TrimSpace(c.Query(f)); v != "" {
			filters[f] = v
		}
	}

	items, err := r.schema.List(c.Request.Context(), params, filters)
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}

	rows := make([]Row, len(items))
	for i, it := range items {
		rows[i] = Row{Item: r.schema.Present(it), Display: r.format(it)}
	}
	c.JSON(http.StatusOK, ListResponse{
		Items: rows,
		Meta: ListMeta{
			Entity:       r.schema.Entity,
			Limit:        params.Limit,
			Offset:       params.Offset,
			Count:        len(rows),
			Search:       params.Search,
			SearchFields: r.searchFields(),
		},
	})
}

func (r *Resource[T, R]) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	r.respondWith(c, http.StatusOK, id)
}

func (r *Resource[T, R]) create(c *gin.Context) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := r.schema.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	r.respondWith(c, http.StatusCreated, id)
}

func (r *Resource[T, R]) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := r.schema.Update(c.Request.Context(), id, actor(c), req); err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	r.respondWith(c, http.StatusOK, id)
}

func (r *Resource[T, R]) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := r.schema.Delete(c.Request.Context(), id); err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Resource[T, R]) respondWith(c *gin.Context, status int, id int64) {
	item, err := r.schema.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromUsecase(c, err)
		return
	}
	c.JSON(status, r.schema.Present(item))
}

func (r *Resource[T, R]) format(item T) map[string]string {
	if len(r.schema.Formatters) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.schema.Formatters))
	for field, f := range r.schema.Formatters {
		out[field] = f(item)
	}
	return out
}

func (r *Resource[T, R]) searchFields() []string {
	if r.schema.SearchFields == nil {
		return []string{}
	}
	return r.schema.SearchFields
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.Abort(c, http.StatusBadRequest, errInvalidID, "Invalid id")
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func actor(c *gin.Context) string {
	if id, ok := middleware.GetUserID(c); ok {
		return id.String()
	}
	return ""
}
