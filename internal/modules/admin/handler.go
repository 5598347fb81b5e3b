package admin

import (
	"net/http"
	"strconv"

	"motorhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/accounts/toggle", h.ToggleAccount)
	rg.GET("/workshops/pending", h.PendingWorkshops)
	rg.GET("/stats", h.Statistics)
}

func (h *Handler) ToggleAccount(c *gin.Context) {
	var req ToggleAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	active, err := h.service.ToggleAccountActive(c.Request.Context(), req.AccountID, req.AccountType)
	if err != nil {
		switch err {
		case ErrInvalidAccountType:
			response.Error(c, http.StatusBadRequest, "INVALID_ACCOUNT_TYPE", "Account type must be vehicleOwner or workshop")
		case ErrAccountNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Account not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to toggle account")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"is_active": active})
}

func (h *Handler) PendingWorkshops(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.service.GetPendingWorkshops(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch pending workshops")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"workshops": items,
		"total":     total,
		"page":      page,
	})
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute statistics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
