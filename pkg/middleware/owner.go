package middleware

import (
	"github.com/labstack/echo/v4"

	"gardenplanner/entities"
)

// Owner stamps the requesting user id into context. There is no real
// auth yet; a GARDEN_UID cookie overrides the guest default so a future
// multi-user extension only has to swap this middleware.
func Owner() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := entities.GuestUserID
			if ck, err := c.Cookie("GARDEN_UID"); err == nil && ck.Value != "" {
				uid = ck.Value
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
