package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobmaroc/backend/internal/api/metrics"
	"github.com/jobmaroc/backend/internal/api/middleware"
	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// OfferHandler serves the job offer routes.
type OfferHandler struct {
	service ports.OfferService
}

func NewOfferHandler(service ports.OfferService) *OfferHandler {
	return &OfferHandler{service: service}
}

type offerRequest struct {
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	BasicSalary    *float64   `json:"basic_salary"`
	SectorActivity string     `json:"sector_activity"`
	StudyLevel     string     `json:"study_level"`
	Experience     string     `json:"experience"`
	Skills         string     `json:"skills"`
	Modality       string     `json:"modality" validate:"omitempty,oneof=ON_SITE REMOTE HYBRID"`
	FlexibleHours  bool       `json:"flexible_hours"`
	OfferURL       string     `json:"offer_url"`
	ExpiresAt      *time.Time `json:"date_expiration"`
}

type updateOfferRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	BasicSalary    *float64   `json:"basic_salary"`
	SectorActivity string     `json:"sector_activity"`
	StudyLevel     string     `json:"study_level"`
	Experience     string     `json:"experience"`
	Skills         string     `json:"skills"`
	Modality       string     `json:"modality" validate:"omitempty,oneof=ON_SITE REMOTE HYBRID"`
	Status         string     `json:"status" validate:"omitempty,oneof=OPEN CLOSED EXPIRED CANCELLED DRAFT"`
	FlexibleHours  *bool      `json:"flexible_hours"`
	OfferURL       string     `json:"offer_url"`
	ExpiresAt      *time.Time `json:"date_expiration"`
}

// List handles GET /offers.
//
// @Summary      List all offers
// @Tags         offers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Offer
// @Router       /offers [get]
func (h *OfferHandler) List(c echo.Context) error {
	offers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offers)
}

// Get handles GET /offers/:id.
//
// @Summary      Get an offer by ID
// @Tags         offers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Offer ID"
// @Success      200  {object}  domain.Offer
// @Failure      404  {object}  map[string]any
// @Router       /offers/{id} [get]
func (h *OfferHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	offer, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offer)
}

// ListMine handles GET /offers/mine: the caller's own postings.
//
// @Summary      List the caller's offers
// @Tags         offers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Offer
// @Router       /offers/mine [get]
func (h *OfferHandler) ListMine(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	offers, err := h.service.ListByManagerEmail(c.Request().Context(), id.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offers)
}

// Create handles POST /offers. The publishing manager is always the caller.
//
// @Summary      Publish a new offer
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      offerRequest  true  "Offer details"
// @Success      201   {object}  domain.Offer
// @Failure      400   {object}  map[string]any
// @Router       /offers [post]
func (h *OfferHandler) Create(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offer, err := h.service.Create(c.Request().Context(), ports.CreateOfferInput{
		ManagerEmail:   id.Email,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		BasicSalary:    req.BasicSalary,
		SectorActivity: req.SectorActivity,
		StudyLevel:     req.StudyLevel,
		Experience:     req.Experience,
		Skills:         req.Skills,
		Modality:       req.Modality,
		FlexibleHours:  req.FlexibleHours,
		OfferURL:       req.OfferURL,
		ExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		return err
	}

	metrics.OffersCreatedTotal.WithLabelValues(string(offer.Modality)).Inc()
	return c.JSON(http.StatusCreated, offer)
}

// Update handles PUT /offers/:id. Managers may only touch their own offers;
// admins bypass the ownership check.
//
// @Summary      Update an offer
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Offer ID"
// @Param        body  body      updateOfferRequest  true  "Fields to update"
// @Success      200   {object}  domain.Offer
// @Failure      403   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /offers/{id} [put]
func (h *OfferHandler) Update(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	offerID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateOfferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offer, err := h.service.Update(c.Request().Context(), offerID, ownerEmail(id), ports.UpdateOfferInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		BasicSalary:    req.BasicSalary,
		SectorActivity: req.SectorActivity,
		StudyLevel:     req.StudyLevel,
		Experience:     req.Experience,
		Skills:         req.Skills,
		Modality:       req.Modality,
		Status:         req.Status,
		FlexibleHours:  req.FlexibleHours,
		OfferURL:       req.OfferURL,
		ExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offer)
}

// Delete handles DELETE /offers/:id.
//
// @Summary      Delete an offer
// @Tags         offers
// @Security     BearerAuth
// @Param        id  path  int  true  "Offer ID"
// @Success      204
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /offers/{id} [delete]
func (h *OfferHandler) Delete(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	offerID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), offerID, ownerEmail(id)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ownerEmail returns the email used for the ownership check. Admins pass an
// empty string, which the service treats as a bypass.
func ownerEmail(id middleware.Identity) string {
	if id.Role == domain.RoleAdmin {
		return ""
	}
	return id.Email
}
