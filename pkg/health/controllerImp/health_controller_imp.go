package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"clubchat/entities"
)

var appStart = time.Now()

type HealthCtrl struct {
	db       *gorm.DB
	provider string
}

func NewHealthCtrl(db *gorm.DB, aiProvider string) *HealthCtrl {
	return &HealthCtrl{db: db, provider: aiProvider}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	var chunks int64
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		} else if err := h.db.WithContext(ctx).Model(&entities.ArticleChunk{}).Count(&chunks).Error; err != nil {
			dbErr = "chunk count: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	return c.JSON(status, map[string]any{
		"status":      map[string]any{"ok": dbOK},
		"uptime_sec":  int(time.Since(appStart).Seconds()),
		"ai_provider": h.provider,
		"kb_chunks":   chunks,
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
