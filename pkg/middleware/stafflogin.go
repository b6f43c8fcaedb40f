package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const staffCookie = "STAFF_ID"

// StaffLogin resolves the acting staff member from a cookie and stores
// it on the request context. Development convenience only, real
// deployments put an auth proxy in front.
func StaffLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			staff := ""
			if ck, err := c.Cookie(staffCookie); err == nil {
				staff = ck.Value
			}
			if staff == "" {
				if q := c.QueryParam("staff"); q != "" {
					c.SetCookie(&http.Cookie{Name: staffCookie, Value: q, Path: "/"})
					staff = q
				} else {
					staff = "staff-dev"
					c.SetCookie(&http.Cookie{Name: staffCookie, Value: staff, Path: "/"})
				}
			}
			c.Set("staff_id", staff)
			return next(c)
		}
	}
}
