package review

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/workshops/:workshopId/reviews", h.GetByWorkshop)
	rg.GET("/workshops/:workshopId/rating", h.Rating)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews/:ownerId/:workshopId", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("ownerId"), 10, 64)
	if err != nil || ownerID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid owner ID")
		return
	}
	workshopID, err := strconv.ParseInt(c.Param("workshopId"), 10, 64)
	if err != nil || workshopID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid workshop ID")
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		return
	}

	rv, created, err := h.service.Submit(c.Request.Context(), ownerID, workshopID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		case ErrOwnerNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle owner not found")
		case ErrWorkshopNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Workshop not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit review")
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, gin.H{"review": rv})
}

func (h *Handler) GetByWorkshop(c *gin.Context) {
	workshopID, err := strconv.ParseInt(c.Param("workshopId"), 10, 64)
	if err != nil || workshopID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid workshop ID")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.service.GetByWorkshop(c.Request.Context(), workshopID, limit, offset)
	if err != nil {
		if err == ErrWorkshopNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Workshop not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": items})
}

func (h *Handler) Rating(c *gin.Context) {
	workshopID, err := strconv.ParseInt(c.Param("workshopId"), 10, 64)
	if err != nil || workshopID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid workshop ID")
		return
	}

	summary, err := h.service.RatingForWorkshop(c.Request.Context(), workshopID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute rating")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rating": summary})
}
