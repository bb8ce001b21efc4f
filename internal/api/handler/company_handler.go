package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmaroc/backend/internal/core/ports"
)

// CompanyHandler serves the caller's company profile.
type CompanyHandler struct {
	companies ports.CompanyRepository
}

func NewCompanyHandler(companies ports.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

type updateCompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Sector      string `json:"sector"`
	Size        string `json:"size"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// Mine handles GET /companies/mine: the caller's company.
//
// @Summary      Get the caller's company profile
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Company
// @Failure      404  {object}  map[string]any
// @Router       /companies/mine [get]
func (h *CompanyHandler) Mine(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	company, err := h.companies.FindByManagerEmail(c.Request().Context(), id.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Update handles PUT /companies/mine.
//
// @Summary      Update the caller's company profile
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateCompanyRequest  true  "Company fields"
// @Success      200   {object}  domain.Company
// @Failure      404   {object}  map[string]any
// @Router       /companies/mine [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req updateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	company, err := h.companies.FindByManagerEmail(ctx, id.Email)
	if err != nil {
		return err
	}

	company.Name = req.Name
	company.Address = req.Address
	company.Phone = req.Phone
	company.Email = req.Email
	company.Website = req.Website
	company.Description = req.Description
	company.Sector = req.Sector
	company.Size = req.Size
	company.City = req.City
	company.Country = req.Country

	updated, err := h.companies.Update(ctx, company)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
