package auth

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/southlake-academy/admin-api/internal/models"
	"github.com/southlake-academy/admin-api/pkg/response"
	"github.com/southlake-academy/admin-api/pkg/utils"
)

// UserStore is the persistence surface the auth handlers need.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, email, passwordHash, fullName string, role models.Role) (*models.User, error)
}

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the body for POST /api/auth/register (admin only).
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role"` // optional, defaults to staff
}

// TokenResponse is the auth response with JWT.
type TokenResponse struct {
	Token string            `json:"token"`
	User  models.UserPublic `json:"user"`
}

// Handler handles auth HTTP endpoints.
type Handler struct {
	store  UserStore
	jwt    *JWTService
	logger *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(store UserStore, jwt *JWTService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, jwt: jwt, logger: logger}
}

// Login handles POST /api/auth/login. The returned token is what the SPA
// keeps in local storage and presents on every protected call.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.store.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("lookup user failed", zap.Error(err))
		response.Internal(c, "failed to sign in")
		return
	}
	if user == nil || !utils.CheckPassword(req.Password, user.Password) {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		h.logger.Error("generate token failed", zap.Error(err))
		response.Internal(c, "failed to generate token")
		return
	}

	response.OK(c, TokenResponse{Token: token, User: user.ToPublic()})
}

// Register handles POST /api/auth/register. Route-guarded to admins.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	role := models.RoleStaff
	switch req.Role {
	case "", "staff":
	case "admin":
		role = models.RoleAdmin
	default:
		response.BadRequest(c, "invalid role")
		return
	}

	existing, err := h.store.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Internal(c, "failed to create user")
		return
	}
	if existing != nil {
		response.Conflict(c, "email already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Internal(c, "failed to hash password")
		return
	}

	user, err := h.store.Create(c.Request.Context(), req.Email, hash, req.FullName, role)
	if err != nil {
		h.logger.Error("create user failed", zap.Error(err))
		response.Internal(c, "failed to create user")
		return
	}

	response.Created(c, user.ToPublic())
}
