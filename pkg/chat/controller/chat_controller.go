package controller

import "github.com/labstack/echo/v4"

type ChatController interface {
	Post(c echo.Context) error
	History(c echo.Context) error
	Rate(c echo.Context) error
	List(c echo.Context) error
}
