package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lankatrails/internal/pkg/response"
	"lankatrails/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/provider/signup", h.ProviderSignup)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid signup request", fields)
		return
	}

	user, token, err := h.service.SignupTourist(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusCreated, "Account created", gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *Handler) ProviderSignup(c *gin.Context) {
	var req ProviderSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid signup request", fields)
		return
	}

	user, provider, token, err := h.service.SignupProvider(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessMessage(c, http.StatusCreated, "Account created, listing awaiting approval", gin.H{
		"user":     user,
		"provider": provider,
		"token":    token,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid signup request")
	default:
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to create account")
	}
}
