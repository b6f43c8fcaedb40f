package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubchat/pkg/auth/controller"
)

type authCtrl struct{}

func NewAuthController() controller.AuthController { return &authCtrl{} }

func (h *authCtrl) DevLogin(c echo.Context) error {
	staff := c.QueryParam("staff")
	if staff == "" {
		staff = "staff-dev"
	}
	c.SetCookie(&http.Cookie{Name: "STAFF_ID", Value: staff, Path: "/"})
	return c.JSON(http.StatusOK, map[string]string{"staff_id": staff})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	v := c.Get("staff_id")
	staff, _ := v.(string)
	return c.JSON(http.StatusOK, map[string]string{"staff_id": staff})
}
