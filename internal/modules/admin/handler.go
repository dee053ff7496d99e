package admin

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

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	providers := admin.Group("/providers")
	{
		providers.GET("", h.ListProviders)
		providers.POST("", h.CreateProvider)
		providers.PATCH("/:id/approve", h.ApproveProvider)
		providers.DELETE("/:id", h.DeleteProvider)
	}

	tourists := admin.Group("/tourists")
	{
		tourists.GET("", h.ListTourists)
		tourists.DELETE("/:id", h.DeleteTourist)
	}
}

// ListProviders returns every listing, or only the moderation queue with
// ?status=pending.
func (h *Handler) ListProviders(c *gin.Context) {
	var list []domain.Provider
	var err error

	switch c.DefaultQuery("status", "all") {
	case "pending":
		list, err = h.service.ListPendingProviders(c.Request.Context())
	case "all":
		list, err = h.service.ListAllProviders(c.Request.Context())
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be pending or all")
		return
	}
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) CreateProvider(c *gin.Context) {
	var req CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid provider request", fields)
		return
	}

	p, err := h.service.CreateProvider(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusCreated, "Provider created", p)
}

func (h *Handler) ApproveProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.ApproveProvider(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Provider approved", p)
}

func (h *Handler) DeleteProvider(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteProvider(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Provider deleted", gin.H{"id": id})
}

func (h *Handler) ListTourists(c *gin.Context) {
	list, err := h.service.ListTourists(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) DeleteTourist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTourist(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Tourist deleted", gin.H{"id": id})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}
