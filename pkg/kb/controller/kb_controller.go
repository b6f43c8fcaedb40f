package controller

import "github.com/labstack/echo/v4"

type KBController interface {
	Create(c echo.Context) error
	Update(c echo.Context) error
	List(c echo.Context) error
	Delete(c echo.Context) error
	IngestURL(c echo.Context) error
	Search(c echo.Context) error
}
