package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
)

type OwnerHandler struct {
	storeService ports.StoreService
}

func NewOwnerHandler(storeService ports.StoreService) *OwnerHandler {
	return &OwnerHandler{storeService: storeService}
}

// Dashboard returns the caller's store, its average rating, and every rating
// submitted for it with the rater's details.
//
// @Summary      Owner dashboard
// @Tags         owner
// @Security     BearerAuth
// @Produce      json
// @Param        sort_by  query  string  false  "Sort field for ratings"  Enums(user_name, email, rating_value, submitted_at, created_at)
// @Param        order    query  string  false  "Sort order"  Enums(asc, desc)
// @Success      200  {object}  ports.OwnerDashboard
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /owner/dashboard [get]
func (h *OwnerHandler) Dashboard(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	dashboard, err := h.storeService.Dashboard(c.Request().Context(), userID, ports.RatingsSort{
		Field: c.QueryParam("sort_by"),
		Order: c.QueryParam("order"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboard)
}
