package onboarding

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"motorhub/internal/middleware"
	"motorhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// ImageSaver is what the handler needs from the upload store; the service
// only ever deletes.
type ImageSaver interface {
	Save(fileHeader *multipart.FileHeader) (string, error)
}

type Handler struct {
	service *Service
	images  ImageSaver
}

func NewHandler(service *Service, images ImageSaver) *Handler {
	return &Handler{service: service, images: images}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/workshops/register", h.Register)
	rg.GET("/workshops", h.ListWorkshops)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/workshops/:id/decision", h.Decide)
}

func (h *Handler) RegisterWorkshopRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/workshops/:id/profile", h.UpdateProfile)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterWorkshopRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid registration form")
		return
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		relPath, err := h.images.Save(fileHeader)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_IMAGE", "Image upload failed: "+err.Error())
			return
		}
		req.ImagePath = relPath
	}

	w, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid registration fields")
		case ErrDuplicateIdentity:
			response.Error(c, http.StatusConflict, "DUPLICATE_IDENTITY", "Email, phone or license number already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register workshop")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"workshop": w,
		"message":  "Registration received, pending admin verification",
	})
}

func (h *Handler) Decide(c *gin.Context) {
	workshopID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || workshopID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid workshop ID")
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Decide(c.Request.Context(), workshopID, req.Status); err != nil {
		switch err {
		case ErrInvalidDecision:
			response.Error(c, http.StatusBadRequest, "INVALID_DECISION", "Decision must be accepted or rejected")
		case ErrWorkshopNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Workshop not found")
		case ErrAlreadyVerified:
			response.Error(c, http.StatusBadRequest, "ALREADY_VERIFIED", "Workshop is already verified")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process decision")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": req.Status})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	workshopID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || workshopID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid workshop ID")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.service.UpdateProfile(c.Request.Context(), actor, workshopID, req)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only update your own profile")
		case ErrWorkshopNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Workshop not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"workshop": w})
}

func (h *Handler) ListWorkshops(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.service.ListVerified(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch workshops")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"workshops": items,
		"total":     total,
		"page":      page,
	})
}
