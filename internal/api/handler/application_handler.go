package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmaroc/backend/internal/api/metrics"
	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// ApplicationHandler serves the candidacy routes.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type submitApplicationRequest struct {
	OfferID         uint   `json:"offer_id" validate:"required"`
	CoverLetterPath string `json:"cover_letter_path"`
	Notes           string `json:"notes"`
}

type updateApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING VIEWED ACCEPTED REJECTED"`
	Notes  string `json:"notes"`
}

// Submit handles POST /applications: the caller applies to an offer.
//
// @Summary      Submit an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitApplicationRequest  true  "Application"
// @Success      201   {object}  domain.Application
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /applications [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Submit(c.Request().Context(), ports.SubmitApplicationInput{
		TalentEmail:     id.Email,
		OfferID:         req.OfferID,
		CoverLetterPath: req.CoverLetterPath,
		Notes:           req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, app)
}

// ListByOffer handles GET /applications/offer/:id.
//
// @Summary      List applications for an offer
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "Offer ID"
// @Success      200  {array}  domain.Application
// @Router       /applications/offer/{id} [get]
func (h *ApplicationHandler) ListByOffer(c echo.Context) error {
	offerID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	apps, err := h.service.ListByOffer(c.Request().Context(), offerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// ListMine handles GET /applications/mine. Talents see their submissions;
// managers see the applications against their offers.
//
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Application
// @Router       /applications/mine [get]
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var apps []domain.Application
	if id.Role == domain.RoleManager {
		apps, err = h.service.ListByManagerEmail(ctx, id.Email)
	} else {
		apps, err = h.service.ListByTalentEmail(ctx, id.Email)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// UpdateStatus handles PATCH /applications/:id/status.
//
// @Summary      Advance an application's status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Application ID"
// @Param        body  body      updateApplicationRequest  true  "New status"
// @Success      200   {object}  domain.Application
// @Failure      404   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	appID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.UpdateStatus(c.Request().Context(), appID, domain.ApplicationStatus(req.Status), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}
