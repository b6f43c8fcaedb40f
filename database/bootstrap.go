package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"clubchat/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.KnowledgeArticle{},
		&entities.ArticleChunk{},
		&entities.Conversation{},
		&entities.Message{},
		&entities.Contact{},
		&entities.Segment{},
		&entities.Ticket{},
		&entities.Notification{},
		&entities.EventLog{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
