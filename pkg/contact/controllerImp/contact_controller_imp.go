package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"clubchat/pkg/contact/controller"
	"clubchat/pkg/contact/service"
)

type ContactCtrl struct {
	s service.ContactService
}

var _ controller.ContactController = (*ContactCtrl)(nil)

func New(s service.ContactService) *ContactCtrl { return &ContactCtrl{s: s} }

func (h *ContactCtrl) Create(c echo.Context) error {
	var in service.ContactInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	ct, err := h.s.Create(c.Request().Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoIdentity):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "email or phone is required"})
		case errors.Is(err, service.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "contact with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, ct)
}

func (h *ContactCtrl) List(c echo.Context) error {
	cs, err := h.s.List(c.QueryParam("search"), c.QueryParam("tag"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cs)
}

func (h *ContactCtrl) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	ct, err := h.s.ByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "contact not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ct)
}
