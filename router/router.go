package router

import (
	"github.com/labstack/echo/v4"

	"clubchat/pkg/middleware"
)

func New(
	e *echo.Echo,
	kbCtrl interface {
		Create(echo.Context) error
		Update(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	chatCtrl interface {
		Post(echo.Context) error
		History(echo.Context) error
		Rate(echo.Context) error
		List(echo.Context) error
	},
	contactCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
	},
	ticketCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Patch(echo.Context) error
	},
	broadcastSend func(echo.Context) error,
	reportCtrl interface {
		Summary(echo.Context) error
		Export(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.StaffLogin())
	api := e.Group("")

	e.GET("/health", healthCtrl.Health)
	api.GET("/devlogin", authCtrl.DevLogin)
	api.GET("/whoami", authCtrl.WhoAmI)

	// Knowledge base
	api.POST("/kb/articles", kbCtrl.Create)
	api.PUT("/kb/articles/:id", kbCtrl.Update)
	api.GET("/kb/articles", kbCtrl.List)
	api.DELETE("/kb/articles/:id", kbCtrl.Delete)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/search", kbCtrl.Search)

	// Chat widget + back office
	g := e.Group("/chat")
	g.POST("", chatCtrl.Post)
	g.POST("/rate", chatCtrl.Rate)
	g.GET("/:token", chatCtrl.History)
	api.GET("/conversations", chatCtrl.List)

	api.POST("/contacts", contactCtrl.Create)
	api.GET("/contacts", contactCtrl.List)
	api.GET("/contacts/:id", contactCtrl.Get)

	api.POST("/tickets", ticketCtrl.Create)
	api.GET("/tickets", ticketCtrl.List)
	api.PATCH("/tickets/:id", ticketCtrl.Patch)

	api.POST("/broadcasts", broadcastSend)

	api.GET("/reports", reportCtrl.Summary)
	api.GET("/reports/export", reportCtrl.Export)

	return e
}
