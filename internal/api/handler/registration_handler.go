package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmaroc/backend/internal/core/ports"
)

// RegistrationHandler serves the public self-service signup routes.
type RegistrationHandler struct {
	service ports.UserService
}

func NewRegistrationHandler(service ports.UserService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

type registerTalentRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"num_tel"`
	Address   string `json:"address"`
}

type companyRequest struct {
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

type registerManagerRequest struct {
	Email     string         `json:"email" validate:"required,email"`
	Password  string         `json:"password" validate:"required,min=8"`
	FirstName string         `json:"first_name" validate:"required"`
	LastName  string         `json:"last_name" validate:"required"`
	Phone     string         `json:"num_tel"`
	Company   companyRequest `json:"company" validate:"required"`
}

// RegisterTalent handles POST /talent/add. The account starts WAITING and
// cannot sign in until an administrator accepts it.
//
// @Summary      Register a talent account
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        body  body      registerTalentRequest  true  "Talent signup"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /talent/add [post]
func (h *RegistrationHandler) RegisterTalent(c echo.Context) error {
	var req registerTalentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.RegisterTalent(c.Request().Context(), ports.RegisterTalentInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// RegisterManager handles POST /manager/addNew: a manager account plus its
// company profile, provisioned WAITING.
//
// @Summary      Register a manager account with its company
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        body  body      registerManagerRequest  true  "Manager signup"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /manager/addNew [post]
func (h *RegistrationHandler) RegisterManager(c echo.Context) error {
	var req registerManagerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.RegisterManager(c.Request().Context(), ports.RegisterManagerInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Company: ports.CompanyInput{
			Name:        req.Company.Name,
			Address:     req.Company.Address,
			Phone:       req.Company.Phone,
			Email:       req.Company.Email,
			Website:     req.Company.Website,
			Description: req.Company.Description,
			Sector:      req.Company.Sector,
			Size:        req.Company.Size,
			City:        req.Company.City,
			Country:     req.Company.Country,
		},
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}
