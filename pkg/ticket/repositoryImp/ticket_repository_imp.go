package repositoryImp

import (
	"gorm.io/gorm"

	"clubchat/entities"
	"clubchat/pkg/ticket/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TicketRepository { return &repo{db} }

func (r *repo) Create(t *entities.Ticket) error { return r.db.Create(t).Error }
func (r *repo) Update(t *entities.Ticket) error { return r.db.Save(t).Error }

func (r *repo) ByID(id uint) (*entities.Ticket, error) {
	var t entities.Ticket
	if err := r.db.First(&t, "ticket_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repo) List(status, priority, assigneeID string) ([]entities.Ticket, error) {
	q := r.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if priority != "" {
		q = q.Where("priority = ?", priority)
	}
	if assigneeID != "" {
		q = q.Where("assignee_id = ?", assigneeID)
	}
	var ts []entities.Ticket
	return ts, q.Find(&ts).Error
}

func (r *repo) CountByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.Model(&entities.Ticket{}).Select("status, count(*) as n").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.N
	}
	return out, nil
}
