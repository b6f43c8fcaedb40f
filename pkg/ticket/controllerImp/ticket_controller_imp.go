package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"clubchat/pkg/ticket/service"
)

type TicketCtrl struct {
	s service.TicketService
}

func New(s service.TicketService) *TicketCtrl { return &TicketCtrl{s: s} }

func (h *TicketCtrl) Create(c echo.Context) error {
	var in service.TicketInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	t, err := h.s.Create(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, service.ErrMissing) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "subject and description are required"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TicketCtrl) List(c echo.Context) error {
	ts, err := h.s.List(c.QueryParam("status"), c.QueryParam("priority"), c.QueryParam("assignee_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ts)
}

func (h *TicketCtrl) Patch(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	var p service.TicketPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	t, err := h.s.UpdatePartial(uint(id), p)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "ticket not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}
