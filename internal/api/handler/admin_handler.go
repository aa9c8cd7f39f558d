package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
)

type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=user owner admin"`
}

type createStoreRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	OwnerID int64  `json:"owner_id" validate:"required"`
}

// Dashboard returns global counters plus filterable user and store listings.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        name           query  string  false  "User name substring filter"
// @Param        email          query  string  false  "User email substring filter"
// @Param        address        query  string  false  "User address substring filter"
// @Param        role           query  string  false  "Exact role filter"  Enums(user, owner, admin)
// @Param        sort_by        query  string  false  "User sort field"    Enums(name, email, role, address)
// @Param        order          query  string  false  "User sort order"    Enums(asc, desc)
// @Param        store_name     query  string  false  "Store name substring filter"
// @Param        store_address  query  string  false  "Store address substring filter"
// @Param        store_owner_email  query  string  false  "Store owner email substring filter"
// @Param        store_sort_by  query  string  false  "Store sort field"  Enums(name, address, created_at, avg_rating, owner_email)
// @Param        store_order    query  string  false  "Store sort order"  Enums(asc, desc)
// @Success      200  {object}  ports.AdminDashboard
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	dashboard, err := h.adminService.Dashboard(c.Request().Context(), ports.AdminDashboardInput{
		Users: ports.ListUsersFilter{
			Name:    c.QueryParam("name"),
			Email:   c.QueryParam("email"),
			Address: c.QueryParam("address"),
			Role:    c.QueryParam("role"),
			SortBy:  c.QueryParam("sort_by"),
			Order:   c.QueryParam("order"),
		},
		Stores: ports.ListStoresFilter{
			Name:       c.QueryParam("store_name"),
			Address:    c.QueryParam("store_address"),
			OwnerEmail: c.QueryParam("store_owner_email"),
			SortBy:     c.QueryParam("store_sort_by"),
			Order:      c.QueryParam("store_order"),
		},
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboard)
}

// CreateUser creates an account with any role, including admin.
//
// @Summary      Create a user
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.adminService.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{"user": user})
}

// CreateStore registers a store owned by an existing owner account.
//
// @Summary      Create a store
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      createStoreRequest  true  "Store details"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/stores [post]
func (h *AdminHandler) CreateStore(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store, err := h.adminService.CreateStore(c.Request().Context(), ports.CreateStoreInput{
		Name:    req.Name,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{"store": store})
}
