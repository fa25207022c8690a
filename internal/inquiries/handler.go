package inquiries

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/southlake-academy/admin-api/internal/inflight"
	"github.com/southlake-academy/admin-api/internal/models"
	"github.com/southlake-academy/admin-api/pkg/response"
)

// Store is the persistence surface the inquiries handlers need.
type Store interface {
	ListContacts(ctx context.Context) ([]models.Contact, error)
	DeleteContact(ctx context.Context, id int64) (bool, error)
	ListScheduleRequests(ctx context.Context) ([]models.ScheduleRequest, error)
	DeleteScheduleRequest(ctx context.Context, id int64) (bool, error)
}

// Handler handles contact and schedule-request HTTP endpoints.
type Handler struct {
	store  Store
	guard  inflight.Guard
	logger *zap.Logger
}

// NewHandler creates an inquiries handler.
func NewHandler(store Store, guard inflight.Guard, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, guard: guard, logger: logger}
}

// ListContacts handles GET /api/contacts.
func (h *Handler) ListContacts(c *gin.Context) {
	list, err := h.store.ListContacts(c.Request.Context())
	if err != nil {
		h.logger.Error("list contacts failed", zap.Error(err))
		response.Internal(c, "failed to load contacts")
		return
	}
	if list == nil {
		list = []models.Contact{}
	}
	response.OK(c, list)
}

// DeleteContact handles DELETE /api/contacts/:id.
func (h *Handler) DeleteContact(c *gin.Context) {
	h.deleteByID(c, "contact", h.store.DeleteContact)
}

// ListScheduleRequests handles GET /api/schedule.
func (h *Handler) ListScheduleRequests(c *gin.Context) {
	list, err := h.store.ListScheduleRequests(c.Request.Context())
	if err != nil {
		h.logger.Error("list schedule requests failed", zap.Error(err))
		response.Internal(c, "failed to load schedule requests")
		return
	}
	if list == nil {
		list = []models.ScheduleRequest{}
	}
	response.OK(c, list)
}

// DeleteScheduleRequest handles DELETE /api/schedule/:id.
func (h *Handler) DeleteScheduleRequest(c *gin.Context) {
	h.deleteByID(c, "schedule", h.store.DeleteScheduleRequest)
}

// deleteByID is the shared delete flow: parse id, hold the in-flight
// guard for the duration of the store call, 409 when the same row is
// already being deleted.
func (h *Handler) deleteByID(c *gin.Context, kind string, del func(context.Context, int64) (bool, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid id")
		return
	}

	key := kind + ":" + strconv.FormatInt(id, 10)
	acquired, err := h.guard.TryAcquire(c.Request.Context(), key)
	if err != nil {
		h.logger.Error("delete guard failed", zap.Error(err), zap.String("key", key))
		response.Internal(c, "failed to delete")
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

	found, err := del(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("delete failed", zap.Error(err), zap.String("key", key))
		response.Internal(c, "failed to delete")
		return
	}
	if !found {
		response.NotFound(c, kind+" not found")
		return
	}
	response.OK(c, gin.H{"deleted": id})
}
