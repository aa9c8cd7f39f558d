package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aqil0709/store-rating-fullstack/internal/api/middleware"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
)

// ctxIdentity extracts the caller identity injected by the Auth middleware
// and performs a fast-fail check before any service call: a zero user id or
// invalid role means the middleware did not run on this route.
func ctxIdentity(c echo.Context) (userID int64, role domain.Role, err error) {
	userID, _ = c.Get(middleware.ContextUserID).(int64)
	role, _ = c.Get(middleware.ContextRole).(domain.Role)
	if userID == 0 || !role.Valid() {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
