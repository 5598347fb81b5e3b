package auth

import (
	"net/http"

	"motorhub/internal/middleware"
	"motorhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Me)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid registration request")
		return
	}

	u, err := h.service.RegisterOwner(c.Request.Context(), req)
	if err != nil {
		if err == ErrDuplicateIdentity {
			response.Error(c, http.StatusConflict, "DUPLICATE_IDENTITY", "Email or phone already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": u})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid login request")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidPortal:
			response.Error(c, http.StatusBadRequest, "INVALID_PORTAL", "Unknown login portal")
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		case ErrNotVerified:
			response.Error(c, http.StatusForbidden, "NOT_VERIFIED", "Account is pending admin verification")
		case ErrAccountDisabled:
			response.Error(c, http.StatusForbidden, "ACCOUNT_DISABLED", "Account has been deactivated")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Me(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	account, err := h.service.Me(c.Request.Context(), actor)
	if err != nil {
		if err == ErrAccountNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Account not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch account")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"account": account})
}
