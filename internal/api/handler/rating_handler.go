package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aqil0709/store-rating-fullstack/internal/api/metrics"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
)

type RatingHandler struct {
	ratingService ports.RatingService
}

func NewRatingHandler(ratingService ports.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

type submitRatingRequest struct {
	StoreID int64 `json:"store_id" validate:"required"`
	Value   int   `json:"rating" validate:"required,gte=1,lte=5"`
}

// Submit records or overwrites the caller's rating for a store.
//
// @Summary      Rate a store
// @Tags         ratings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      submitRatingRequest  true  "Store and rating value"
// @Success      200   {object}  map[string]string
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /ratings [post]
func (h *RatingHandler) Submit(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.ratingService.Submit(c.Request().Context(), userID, req.StoreID, req.Value)
	if err != nil {
		metrics.RatingsSubmittedTotal.WithLabelValues(ratingResult(err)).Inc()
		return err
	}

	if created {
		metrics.RatingsSubmittedTotal.WithLabelValues("created").Inc()
		return c.JSON(http.StatusCreated, map[string]string{"message": "rating submitted"})
	}
	metrics.RatingsSubmittedTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "rating updated"})
}

func ratingResult(err error) string {
	if domain.IsValidation(err) || err == domain.ErrStoreNotFound {
		return "rejected"
	}
	return "error"
}
