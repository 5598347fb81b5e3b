package booking

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
	rg.POST("/bookings/:ownerId/:workshopId", h.Create)
	rg.PATCH("/bookings/:bookingId/status", h.UpdateStatus)
	rg.DELETE("/bookings/:bookingId", h.Delete)
	rg.GET("/bookings/:bookingId", h.GetByID)
	rg.GET("/bookings/owner/:ownerId", h.GetByOwner)
	rg.GET("/bookings/workshop/:workshopId", h.GetByWorkshop)
}

func (h *Handler) Create(c *gin.Context) {
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

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), ownerID, workshopID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
		case ErrOwnerNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle owner not found")
		case ErrWorkshopNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Workshop not found")
		case ErrSlotTaken:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "You already have a booking for this workshop at this time")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	bookingID := c.Param("bookingId")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), bookingID, req.Status)
	if err != nil {
		switch err {
		case ErrInvalidStatus:
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown booking status")
		case ErrIllegalTransition:
			response.Error(c, http.StatusBadRequest, "ILLEGAL_TRANSITION", "Booking cannot move to the requested status")
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Delete(c *gin.Context) {
	bookingID := c.Param("bookingId")

	if err := h.service.Delete(c.Request.Context(), bookingID); err != nil {
		if err == ErrBookingNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) GetByID(c *gin.Context) {
	b, err := h.service.GetByBookingID(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		if err == ErrBookingNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) GetByOwner(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("ownerId"), 10, 64)
	if err != nil || ownerID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid owner ID")
		return
	}

	items, err := h.service.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) GetByWorkshop(c *gin.Context) {
	workshopID, err := strconv.ParseInt(c.Param("workshopId"), 10, 64)
	if err != nil || workshopID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid workshop ID")
		return
	}

	items, err := h.service.GetByWorkshop(c.Request.Context(), workshopID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}
