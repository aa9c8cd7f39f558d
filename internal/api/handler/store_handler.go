package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
)

type StoreHandler struct {
	storeService ports.StoreService
}

func NewStoreHandler(storeService ports.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// List returns all stores with their average ratings. Callers with the user
// role additionally receive their own submitted ratings.
//
// @Summary      Browse stores
// @Tags         stores
// @Security     BearerAuth
// @Produce      json
// @Param        name     query  string  false  "Name substring filter"
// @Param        address  query  string  false  "Address substring filter"
// @Param        sort_by  query  string  false  "Sort field"  Enums(name, address, created_at, avg_rating, owner_email)
// @Param        order    query  string  false  "Sort order"  Enums(asc, desc)
// @Success      200  {object}  ports.StoreListing
// @Failure      401  {object}  map[string]string
// @Router       /stores [get]
func (h *StoreHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	listing, err := h.storeService.List(c.Request().Context(), userID, role, ports.ListStoresFilter{
		Name:    c.QueryParam("name"),
		Address: c.QueryParam("address"),
		SortBy:  c.QueryParam("sort_by"),
		Order:   c.QueryParam("order"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listing)
}
