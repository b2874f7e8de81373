package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"quorum/internal/delivery/http/response"
	"quorum/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CityHandler serves the read-only city listing.
type CityHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewCityHandler is the constructor for CityHandler, injected by Fx.
func NewCityHandler(listingUC usecase.ListingUsecase, logger *slog.Logger) *CityHandler {
	return &CityHandler{
		listingUC: listingUC,
		logger:    logger,
	}
}

// ListCities returns the filtered, optionally paginated city listing.
func (h *CityHandler) ListCities(c echo.Context) error {
	query := usecase.ListCitiesQuery{
		Name: c.QueryParam("name"),
	}

	if raw := c.QueryParam("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid city id filter")
		}
		query.ID = &id
	}

	page, err := parsePageQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pagination window")
	}
	query.PageQuery = page

	result, err := h.listingUC.ListCities(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}
