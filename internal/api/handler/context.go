package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmaroc/backend/internal/api/middleware"
)

// caller extracts the identity injected by the authentication middleware.
// Routes mounted behind RequireAuth/RequireRoles always carry one; the check
// here is a fast-fail guard for miswired routes.
func caller(c echo.Context) (middleware.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return middleware.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
