package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"clubchat/config"
	"clubchat/database"
	"clubchat/router"

	"clubchat/pkg/ai"
	"clubchat/pkg/crm"

	authCtrlImp "clubchat/pkg/auth/controllerImp"
	healthCtrlImp "clubchat/pkg/health/controllerImp"

	kbChunker "clubchat/pkg/kb/chunker"
	kbCtrlImp "clubchat/pkg/kb/controllerImp"
	kbRepoImp "clubchat/pkg/kb/repositoryImp"
	kbSvcImp "clubchat/pkg/kb/serviceImp"

	chatCtrlImp "clubchat/pkg/chat/controllerImp"
	chatRepoImp "clubchat/pkg/chat/repositoryImp"
	chatSvcImp "clubchat/pkg/chat/serviceImp"

	contactCtrlImp "clubchat/pkg/contact/controllerImp"
	contactRepoImp "clubchat/pkg/contact/repositoryImp"
	contactSvcImp "clubchat/pkg/contact/serviceImp"

	ticketCtrlImp "clubchat/pkg/ticket/controllerImp"
	ticketRepoImp "clubchat/pkg/ticket/repositoryImp"
	ticketSvcImp "clubchat/pkg/ticket/serviceImp"

	"clubchat/pkg/broadcast"
	bcastCtrlImp "clubchat/pkg/broadcast/controllerImp"
	bcastRepoImp "clubchat/pkg/broadcast/repositoryImp"
	bcastSvcImp "clubchat/pkg/broadcast/serviceImp"

	reportCtrlImp "clubchat/pkg/report/controllerImp"
	reportSvcImp "clubchat/pkg/report/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) AI client (mock fallback when no key)
	var client ai.Client
	if cfg.AIProvider == "openai" && cfg.OpenAIKey != "" {
		client = ai.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel, cfg.EmbeddingModel, cfg.EmbedDim)
	} else {
		if cfg.AIProvider == "openai" {
			log.Printf("[main] AI_PROVIDER=openai but no OPENAI_API_KEY, using mock")
		}
		client = ai.NewMock(cfg.EmbedDim)
	}

	// 4) Knowledge base
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbSvcImp.New(kbRepo, client, kbChunker.New(cfg.ChunkMinLen), cfg.EmbedDim)
	kbCtrl := kbCtrlImp.New(kbSvc, cfg.KBAllowedDomains, cfg.KBMaxBytes)

	// 5) Chat
	chatRepo := chatRepoImp.New(db)
	chatSvc := chatSvcImp.New(chatRepo, kbSvc, client, cfg.ChatTopK)
	chatCtrl := chatCtrlImp.New(chatSvc)

	// 6) Contacts + tickets
	contactRepo := contactRepoImp.New(db)
	contactSvc := contactSvcImp.New(contactRepo, crm.NewNoop())
	contactCtrl := contactCtrlImp.New(contactSvc)

	ticketRepo := ticketRepoImp.New(db)
	ticketSvc := ticketSvcImp.New(ticketRepo, contactSvc)
	ticketCtrl := ticketCtrlImp.New(ticketSvc)

	// 7) Broadcast + reports
	bcastRepo := bcastRepoImp.New(db)
	notifier := broadcast.NewNotifier(broadcast.NotifierConfig{
		SMTPHost:   cfg.SMTPHost,
		SMTPFrom:   cfg.SMTPFrom,
		TwilioSID:  cfg.TwilioSID,
		TwilioFrom: cfg.TwilioFrom,
	})
	bcastSvc := bcastSvcImp.New(bcastRepo, contactRepo, notifier)
	bcastCtrl := bcastCtrlImp.New(bcastSvc)

	reportSvc := reportSvcImp.New(db, ticketRepo)
	reportCtrl := reportCtrlImp.New(reportSvc)

	// 8) Auth + health
	authCtrl := authCtrlImp.NewAuthController()
	healthCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.AIProvider)

	// 9) Echo + routes
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	r := router.New(
		e,
		kbCtrl,
		chatCtrl,
		contactCtrl,
		ticketCtrl,
		bcastCtrl.Send,
		reportCtrl,
		authCtrl,
		healthCtrl,
	)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
