package serviceImp

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"clubchat/entities"
	"clubchat/pkg/report/service"
	ticketrepo "clubchat/pkg/ticket/repository"
)

type Svc struct {
	db      *gorm.DB
	tickets ticketrepo.TicketRepository
}

func New(db *gorm.DB, tickets ticketrepo.TicketRepository) *Svc {
	return &Svc{db: db, tickets: tickets}
}

func (s *Svc) Summary() (*service.Summary, error) {
	sum := &service.Summary{}

	count := func(model any, dest *int64, cond ...any) error {
		q := s.db.Model(model)
		if len(cond) > 0 {
			q = q.Where(cond[0], cond[1:]...)
		}
		return q.Count(dest).Error
	}

	if err := count(&entities.Conversation{}, &sum.Conversations); err != nil {
		return nil, err
	}
	if err := count(&entities.Message{}, &sum.Messages); err != nil {
		return nil, err
	}
	if err := count(&entities.Message{}, &sum.RatingsUp, "rating = ?", 1); err != nil {
		return nil, err
	}
	if err := count(&entities.Message{}, &sum.RatingsDown, "rating = ?", -1); err != nil {
		return nil, err
	}
	if err := count(&entities.KnowledgeArticle{}, &sum.Articles); err != nil {
		return nil, err
	}
	if err := count(&entities.ArticleChunk{}, &sum.Chunks); err != nil {
		return nil, err
	}
	if err := count(&entities.Contact{}, &sum.Contacts); err != nil {
		return nil, err
	}

	byStatus, err := s.tickets.CountByStatus()
	if err != nil {
		return nil, err
	}
	sum.TicketsByStat = byStatus
	return sum, nil
}

func (s *Svc) ExportXLSX() ([]byte, error) {
	sum, err := s.Summary()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	rows := [][]any{
		{"Metric", "Value"},
		{"Conversations", sum.Conversations},
		{"Messages", sum.Messages},
		{"Ratings +1", sum.RatingsUp},
		{"Ratings -1", sum.RatingsDown},
		{"Articles", sum.Articles},
		{"Chunks", sum.Chunks},
		{"Contacts", sum.Contacts},
	}
	for status, n := range sum.TicketsByStat {
		rows = append(rows, []any{"Tickets " + status, n})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
