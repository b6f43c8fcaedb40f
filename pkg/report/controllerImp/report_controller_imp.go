package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubchat/pkg/report/service"
)

type ReportCtrl struct {
	s service.ReportService
}

func New(s service.ReportService) *ReportCtrl { return &ReportCtrl{s: s} }

func (h *ReportCtrl) Summary(c echo.Context) error {
	sum, err := h.s.Summary()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *ReportCtrl) Export(c echo.Context) error {
	b, err := h.s.ExportXLSX()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="clubchat-report.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b)
}
