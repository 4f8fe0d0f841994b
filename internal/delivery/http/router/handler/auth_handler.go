// Package handler contains the HTTP handlers of the sandbox backend.
package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/sandbox"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves login, registration and profile edits.
type AuthHandler struct {
	backend *sandbox.Backend
	uploads *sandbox.Uploads
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(backend *sandbox.Backend, uploads *sandbox.Uploads) *AuthHandler {
	return &AuthHandler{backend: backend, uploads: uploads}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	FullName string      `json:"fullName" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Phone    string      `json:"phone" validate:"required"`
	Role     entity.Role `json:"role" validate:"required,role"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.backend.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// Register handles POST /auth/register. It does not log the user in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.backend.Register(c.Request().Context(), &repository.RegisterPayload{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, user)
}

// UpdateProfile handles the multipart PATCH /users/:id.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	form, err := readMultipart(c, h.uploads)
	if err != nil {
		return err
	}
	avatar, err := form.File("avatar")
	if err != nil {
		return err
	}

	user, err := h.backend.UpdateProfile(middleware.UserID(c), c.Param("id"), sandbox.ProfileFields{
		FullName:  form.String("fullName"),
		Phone:     form.String("phone"),
		AvatarURL: avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// HealthCheck reports that the sandbox is serving.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
