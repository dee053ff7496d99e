package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lankatrails/internal/domain"
	"lankatrails/internal/pkg/response"
	"lankatrails/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(authed *gin.RouterGroup) {
	bookings := authed.Group("/bookings")
	{
		bookings.POST("", h.CreateProviderBooking)
		bookings.POST("/product", h.CreateProductBooking)
		bookings.GET("/my", h.MyBookings)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	bookings := admin.Group("/bookings")
	{
		bookings.GET("", h.ListAll)
		bookings.POST("", h.AdminCreate)
		bookings.PATCH("/:id/approve", h.Approve)
		bookings.PATCH("/:id/cancel", h.Cancel)
		bookings.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) CreateProviderBooking(c *gin.Context) {
	var req CreateProviderBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request", fields)
		return
	}

	b, err := h.service.CreateProviderBooking(c.Request.Context(), c.GetInt64("user_id"), domain.UserRole(c.GetString("role")), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusCreated, "Booking created", b)
}

func (h *Handler) CreateProductBooking(c *gin.Context) {
	var req CreateProductBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request", fields)
		return
	}

	b, err := h.service.CreateProductBooking(c.Request.Context(), c.GetInt64("user_id"), domain.UserRole(c.GetString("role")), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusCreated, "Booking created, awaiting admin approval", b)
}

func (h *Handler) MyBookings(c *gin.Context) {
	list, err := h.service.ListMine(c.Request.Context(), c.GetInt64("user_id"), domain.UserRole(c.GetString("role")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) AdminCreate(c *gin.Context) {
	var req AdminCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request", fields)
		return
	}

	b, err := h.service.AdminCreate(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusCreated, "Booking created", b)
}

func (h *Handler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Booking approved", b)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Booking cancelled", b)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Booking deleted", gin.H{"id": id})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, ErrNoPricing):
		response.Error(c, http.StatusBadRequest, "NO_PRICING", "No pricing available for this headcount")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or target not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

// parseID rejects malformed ids before any lookup happens.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}
