package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-portal/internal/application"
	"github.com/oksasatya/go-auth-portal/internal/domain/entity"
	"github.com/oksasatya/go-auth-portal/internal/interface/middleware"
	"github.com/oksasatya/go-auth-portal/pkg/response"
	"github.com/oksasatya/go-auth-portal/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Field presence and format rules are enforced by the application service
// so their ordering and messages stay in one place; binding only rejects
// malformed JSON.
type registerRequest struct {
	Name       string `json:"name"`
	Password   string `json:"password"`
	Type       string `json:"type"`
	Email      string `json:"email"`
	Identifier string `json:"identifier"`
}

type loginRequest struct {
	Password   string `json:"password"`
	Type       string `json:"type"`
	Email      string `json:"email"`
	Identifier string `json:"identifier"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	user, token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:       req.Name,
		Password:   req.Password,
		Type:       entity.UserType(req.Type),
		Email:      req.Email,
		Identifier: req.Identifier,
	})
	if err != nil {
		h.writeError(c, err, "registration failed")
		return
	}
	response.Auth(c, http.StatusCreated, "user registered successfully", user, token)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	user, token, err := h.Svc.Login(c.Request.Context(), application.LoginInput{
		Password:   req.Password,
		Type:       entity.UserType(req.Type),
		Email:      req.Email,
		Identifier: req.Identifier,
	})
	if err != nil {
		h.writeError(c, err, "login failed")
		return
	}
	response.Auth(c, http.StatusOK, "login successful", user, token)
}

// Me handles GET /api/auth/me; BearerAuth has already verified the token.
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	user, err := h.Svc.Me(c.Request.Context(), uid)
	if err != nil {
		h.writeError(c, err, "me lookup failed")
		return
	}
	response.User(c, http.StatusOK, user)
}

// writeError maps application errors onto the status taxonomy: validation
// and conflicts 400, bad credentials 401, missing user 404, everything
// else logged and returned as a generic 500.
func (h *AuthHandler) writeError(c *gin.Context, err error, logMsg string) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error(c, http.StatusBadRequest, verr.Error(), nil)
	case errors.Is(err, application.ErrUserExists):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)
	default:
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(logMsg)
		response.Error(c, http.StatusInternalServerError, "server error", nil)
	}
}
