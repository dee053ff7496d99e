package provider

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lankatrails/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/providers", h.List)
	v1.GET("/providers/:id", h.Get)
	v1.GET("/products", h.Products)
	v1.GET("/products/:type", h.Product)
}

func (h *Handler) RegisterRoutes(authed *gin.RouterGroup) {
	me := authed.Group("/providers/me")
	{
		me.GET("", h.Me)
		me.POST("/images", h.UploadImage)
	}
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.ListApproved(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid provider ID")
		return
	}

	p, err := h.service.GetPublic(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Me(c *gin.Context) {
	p, err := h.service.GetMine(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_UPLOAD", "Missing image file")
		return
	}

	kind := c.DefaultQuery("kind", "gallery")
	url, err := h.service.UploadImage(c.Request.Context(), c.GetInt64("user_id"), kind, fh)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusCreated, "Image uploaded", gin.H{"url": url})
}

func (h *Handler) Products(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Products())
}

func (h *Handler) Product(c *gin.Context) {
	p, err := h.service.Product(c.Param("type"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrBadUpload):
		response.Error(c, http.StatusBadRequest, "INVALID_UPLOAD", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
