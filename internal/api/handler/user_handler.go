package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
	"github.com/nefroclinica/clinic-system/internal/core/ports"
)

// UserHandler handles the admin-only staff administration endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type userRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Rol      string `json:"rol" validate:"required,oneof=ADMIN MEDICO ENFERMERO TECNICO"`
}

type passwordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// List handles GET /api/usuarios.
//
// @Summary      List all staff users
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByEmail handles GET /api/usuarios/email/:email.
//
// @Summary      Find a staff user by email
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  domain.User
// @Failure      404    {object}  map[string]string
// @Router       /usuarios/email/{email} [get]
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.service.FindByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /api/usuarios.
//
// @Summary      Create a staff user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /usuarios [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), &domain.User{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Rol:      domain.Role(req.Rol),
	}, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/usuarios/:id.
//
// @Summary      Update a staff user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "User id"
// @Param        body  body      userRequest  true  "Updated details"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Router       /usuarios/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), &domain.User{
		ID:       id,
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Rol:      domain.Role(req.Rol),
	}, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/usuarios/:id.
//
// @Summary      Delete a staff user
// @Tags         usuarios
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      204
// @Router       /usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangePassword handles PUT /api/usuarios/:id/password.
//
// @Summary      Change a staff user's password
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "User id"
// @Param        body  body      passwordRequest  true  "New password"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Router       /usuarios/{id}/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req passwordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.ChangePassword(c.Request().Context(), id, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return id, nil
}
