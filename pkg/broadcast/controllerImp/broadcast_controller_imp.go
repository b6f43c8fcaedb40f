package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"clubchat/pkg/broadcast/service"
)

type BroadcastCtrl struct {
	s service.BroadcastService
}

func New(s service.BroadcastService) *BroadcastCtrl { return &BroadcastCtrl{s: s} }

func (h *BroadcastCtrl) Send(c echo.Context) error {
	var in service.SendInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	res, err := h.s.Send(c.Request().Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissing), errors.Is(err, service.ErrNoChannels):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, service.ErrSegmentNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "segment not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
