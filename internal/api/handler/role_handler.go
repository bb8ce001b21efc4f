package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmaroc/backend/internal/core/ports"
)

// RoleHandler exposes the role catalogue.
type RoleHandler struct {
	roles ports.RoleRepository
}

func NewRoleHandler(roles ports.RoleRepository) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// List handles GET /roles.
//
// @Summary      List all roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Role
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roles.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}
