package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"clubchat/pkg/chat/controller"
	"clubchat/pkg/chat/service"
)

type ChatCtrl struct {
	s service.ChatService
}

var _ controller.ChatController = (*ChatCtrl)(nil)

func New(s service.ChatService) *ChatCtrl { return &ChatCtrl{s: s} }

type postReq struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	ContactID *uint  `json:"contact_id"`
}

func (h *ChatCtrl) Post(c echo.Context) error {
	var req postReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	res, err := h.s.Answer(c.Request().Context(), service.AnswerInput{
		Token:     req.Token,
		Message:   req.Message,
		ContactID: req.ContactID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "conversation not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ChatCtrl) History(c echo.Context) error {
	cv, err := h.s.History(c.Param("token"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "conversation not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cv)
}

type rateReq struct {
	MessageID uint `json:"message_id"`
	Rating    int  `json:"rating"`
}

func (h *ChatCtrl) Rate(c echo.Context) error {
	var req rateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if req.MessageID == 0 || req.Rating == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message_id and rating are required"})
	}
	m, err := h.s.Rate(req.MessageID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "rating must be +1 or -1"})
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, m)
}

func (h *ChatCtrl) List(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	cvs, err := h.s.ListConversations(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cvs)
}
