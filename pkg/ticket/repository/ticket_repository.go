package repository

import "clubchat/entities"

type TicketRepository interface {
	Create(*entities.Ticket) error
	ByID(id uint) (*entities.Ticket, error)
	List(status, priority, assigneeID string) ([]entities.Ticket, error)
	Update(*entities.Ticket) error
	CountByStatus() (map[string]int64, error)
}
