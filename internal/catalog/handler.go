package catalog

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/southlake-academy/admin-api/internal/inflight"
	"github.com/southlake-academy/admin-api/internal/models"
	"github.com/southlake-academy/admin-api/pkg/response"
)

// Store is the persistence surface the catalog handlers need.
type Store interface {
	ListByCategory(ctx context.Context, category string) ([]models.Program, error)
	GetByID(ctx context.Context, category string, id int64) (*models.Program, error)
	Create(ctx context.Context, p *models.Program) error
	Update(ctx context.Context, p *models.Program) (bool, error)
	Delete(ctx context.Context, category string, id int64) (bool, error)
}

// Handler handles program catalog HTTP endpoints.
type Handler struct {
	store  Store
	guard  inflight.Guard
	logger *zap.Logger
}

// NewHandler creates a catalog handler.
func NewHandler(store Store, guard inflight.Guard, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, guard: guard, logger: logger}
}

func (h *Handler) category(c *gin.Context) (Category, bool) {
	cat, ok := Lookup(c.Param("category"))
	if !ok {
		response.NotFound(c, "unknown category")
	}
	return cat, ok
}

func (h *Handler) programID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid program id")
		return 0, false
	}
	return id, true
}

// List handles GET /api/programs/:category.
func (h *Handler) List(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}
	list, err := h.store.ListByCategory(c.Request.Context(), cat.Slug)
	if err != nil {
		h.logger.Error("list programs failed", zap.Error(err), zap.String("category", cat.Slug))
		response.Internal(c, "failed to load programs")
		return
	}
	if list == nil {
		list = []models.Program{}
	}
	response.OK(c, list)
}

// Get handles GET /api/programs/:category/:id.
func (h *Handler) Get(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}
	id, ok := h.programID(c)
	if !ok {
		return
	}
	p, err := h.store.GetByID(c.Request.Context(), cat.Slug, id)
	if err != nil {
		h.logger.Error("get program failed", zap.Error(err), zap.Int64("id", id))
		response.Internal(c, "failed to load program")
		return
	}
	if p == nil {
		response.NotFound(c, "program not found")
		return
	}
	response.OK(c, p)
}

// Create handles POST /api/programs/:category for categories that offer
// an add form.
func (h *Handler) Create(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}
	if !cat.AllowCreate {
		response.Forbidden(c, "category does not allow create")
		return
	}
	var p models.Program
	if err := c.ShouldBindJSON(&p); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if p.Name == "" {
		response.BadRequest(c, "programName is required")
		return
	}
	p.Category = cat.Slug
	if err := h.store.Create(c.Request.Context(), &p); err != nil {
		h.logger.Error("create program failed", zap.Error(err), zap.String("category", cat.Slug))
		response.Internal(c, "failed to create program")
		return
	}
	response.Created(c, &p)
}

// Update handles PUT /api/programs/:category/:id. The body is the full
// record; the stored row is replaced wholesale. An empty image URL keeps
// the previously stored image, so a failed upload on the edit screen
// still saves with the old picture.
func (h *Handler) Update(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}
	id, ok := h.programID(c)
	if !ok {
		return
	}
	var p models.Program
	if err := c.ShouldBindJSON(&p); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if p.Name == "" {
		response.BadRequest(c, "programName is required")
		return
	}
	p.Category = cat.Slug
	p.ID = id

	if p.Image == "" {
		existing, err := h.store.GetByID(c.Request.Context(), cat.Slug, id)
		if err != nil {
			h.logger.Error("get program failed", zap.Error(err), zap.Int64("id", id))
			response.Internal(c, "failed to update program")
			return
		}
		if existing == nil {
			response.NotFound(c, "program not found")
			return
		}
		p.Image = existing.Image
	}

	found, err := h.store.Update(c.Request.Context(), &p)
	if err != nil {
		h.logger.Error("update program failed", zap.Error(err), zap.Int64("id", id))
		response.Internal(c, "failed to update program")
		return
	}
	if !found {
		response.NotFound(c, "program not found")
		return
	}
	response.OK(c, &p)
}

// Delete handles DELETE /api/programs/:category/:id. A delete already in
// flight for the same id is rejected with 409 before any store call;
// deletes of different ids proceed concurrently.
func (h *Handler) Delete(c *gin.Context) {
	cat, ok := h.category(c)
	if !ok {
		return
	}
	if !cat.AllowDelete {
		response.Forbidden(c, "category does not allow delete")
		return
	}
	id, ok := h.programID(c)
	if !ok {
		return
	}

	key := cat.Slug + ":" + strconv.FormatInt(id, 10)
	acquired, err := h.guard.TryAcquire(c.Request.Context(), key)
	if err != nil {
		h.logger.Error("delete guard failed", zap.Error(err), zap.String("key", key))
		response.Internal(c, "failed to delete program")
		return
	}
	if !acquired {
		response.Conflict(c, "delete already in progress")
		return
	}
	defer func() {
		if err := h.guard.Release(c.Request.Context(), key); err != nil {
			h.logger.Warn("release delete guard failed", zap.Error(err), zap.String("key", key))
		}
	}()

	found, err := h.store.Delete(c.Request.Context(), cat.Slug, id)
	if err != nil {
		h.logger.Error("delete program failed", zap.Error(err), zap.Int64("id", id))
		response.Internal(c, "failed to delete program")
		return
	}
	if !found {
		response.NotFound(c, "program not found")
		return
	}
	response.OK(c, gin.H{"deleted": id})
}
