package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireSeller gates catalog mutation routes: the caller must hold the
// supplier or admin flag. Runs after Auth, so missing claims mean the route
// was wired without it.
func RequireSeller() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !claims.IsSupplier && !claims.IsAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
