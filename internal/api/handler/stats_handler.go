package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmaroc/backend/internal/core/ports"
)

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// TopSectors handles GET /stats/top-sectors.
//
// @Summary      Sectors with the most offers
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.StatsBucket
// @Router       /stats/top-sectors [get]
func (h *StatsHandler) TopSectors(c echo.Context) error {
	buckets, err := h.service.TopSectors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, buckets)
}

// ByModality handles GET /stats/by-modality.
//
// @Summary      Offer counts by work modality
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.StatsBucket
// @Router       /stats/by-modality [get]
func (h *StatsHandler) ByModality(c echo.Context) error {
	buckets, err := h.service.OffersByModality(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, buckets)
}

// ByStudyLevel handles GET /stats/by-study-level.
//
// @Summary      Offer counts by required study level
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.StatsBucket
// @Router       /stats/by-study-level [get]
func (h *StatsHandler) ByStudyLevel(c echo.Context) error {
	buckets, err := h.service.OffersByStudyLevel(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, buckets)
}

// ByRegion handles GET /stats/by-region.
//
// @Summary      Offer counts by region
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.StatsBucket
// @Router       /stats/by-region [get]
func (h *StatsHandler) ByRegion(c echo.Context) error {
	buckets, err := h.service.OffersByRegion(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, buckets)
}
