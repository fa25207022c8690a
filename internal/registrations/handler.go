package registrations

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/southlake-academy/admin-api/internal/catalog"
	"github.com/southlake-academy/admin-api/internal/models"
	"github.com/southlake-academy/admin-api/pkg/response"
)

// CategoryAnnual is the pseudo-category addressing the flat annual
// registration list (no per-category forms required).
const CategoryAnnual = "annual"

const (
	paymentHistoryCacheKey = "cache:payment-history"
	paymentHistoryCacheTTL = 30 * time.Second
)

// Store is the persistence surface the registration handlers need.
type Store interface {
	List(ctx context.Context) ([]models.Registration, error)
	ListByCategory(ctx context.Context, category string) ([]models.Registration, error)
	GetByID(ctx context.Context, id int64) (*models.Registration, error)
	Create(ctx context.Context, reg *models.Registration) error
}

// CreateRequest is the body for POST /api/registrations (the admin
// "add new user" modal). Amount is the only optional field.
type CreateRequest struct {
	ParentFirstName string `json:"parentFirstName" binding:"required"`
	ParentLastName  string `json:"parentLastName" binding:"required"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Address         string `json:"address" binding:"required"`
	City            string `json:"city" binding:"required"`
	State           string `json:"state" binding:"required"`
	ZipCode         string `json:"zipCode" binding:"required"`
	Country         string `json:"country" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Amount          string `json:"amount"`
}

// Handler handles registration HTTP endpoints.
type Handler struct {
	store  Store
	rdb    *redis.Client // optional; nil disables the payment-history cache
	logger *zap.Logger
}

// NewHandler creates a registrations handler.
func NewHandler(store Store, rdb *redis.Client, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, rdb: rdb, logger: logger}
}

// ValidCategory reports whether slug names a registration category:
// any catalog category, or the annual pseudo-category.
func ValidCategory(slug string) bool {
	if slug == CategoryAnnual {
		return true
	}
	_, ok := catalog.Lookup(slug)
	return ok
}

// ListByCategory handles GET /api/registrations/:category. The annual
// pseudo-category lists everything; other categories list registrants
// holding at least one form there. An optional ?q= applies the same pure
// filter the admin UI runs per keystroke.
func (h *Handler) ListByCategory(c *gin.Context) {
	slug := c.Param("category")
	if !ValidCategory(slug) {
		response.NotFound(c, "unknown category")
		return
	}

	var (
		list []models.Registration
		err  error
	)
	if slug == CategoryAnnual {
		list, err = h.store.List(c.Request.Context())
	} else {
		list, err = h.store.ListByCategory(c.Request.Context(), slug)
	}
	if err != nil {
		h.logger.Error("list registrations failed", zap.Error(err), zap.String("category", slug))
		response.Internal(c, "failed to load registrations")
		return
	}

	list = Filter(list, c.Query("q"))
	response.OK(c, list)
}

// Create handles POST /api/registrations.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	reg := &models.Registration{
		ParentFirstName: req.ParentFirstName,
		ParentLastName:  req.ParentLastName,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		ZipCode:         req.ZipCode,
		Country:         req.Country,
		Phone:           req.Phone,
		Email:           req.Email,
		Amount:          req.Amount,
	}
	if err := h.store.Create(c.Request.Context(), reg); err != nil {
		h.logger.Error("create registration failed", zap.Error(err))
		response.Internal(c, "failed to create registration")
		return
	}
	response.Created(c, reg)
}

// PaymentHistory handles POST /api/registrations/payment-history: the
// aggregate of all registrations with their form submissions across every
// category. The result is cached briefly in Redis since the payments
// screen re-requests it on every visit.
func (h *Handler) PaymentHistory(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		cached, err := h.rdb.Get(ctx, paymentHistoryCacheKey).Result()
		if err == nil {
			var list []models.Registration
			if json.Unmarshal([]byte(cached), &list) == nil {
				response.OK(c, list)
				return
			}
		} else if !errors.Is(err, redis.Nil) {
			h.logger.Warn("payment history cache read failed", zap.Error(err))
		}
	}

	list, err := h.store.List(ctx)
	if err != nil {
		h.logger.Error("payment history failed", zap.Error(err))
		response.Internal(c, "failed to load payment history")
		return
	}
	if list == nil {
		list = []models.Registration{}
	}

	if h.rdb != nil {
		if payload, err := json.Marshal(list); err == nil {
			if err := h.rdb.Set(ctx, paymentHistoryCacheKey, payload, paymentHistoryCacheTTL).Err(); err != nil {
				h.logger.Warn("payment history cache write failed", zap.Error(err))
			}
		}
	}

	response.OK(c, list)
}
