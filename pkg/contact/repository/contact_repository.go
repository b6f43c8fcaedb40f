package repository

import "clubchat/entities"

type ContactRepository interface {
	Create(*entities.Contact) error
	ByID(id uint) (*entities.Contact, error)
	ByEmail(email string) (*entities.Contact, error)
	List(search, tag string) ([]entities.Contact, error)
	Update(*entities.Contact) error

	SegmentByID(id uint) (*entities.Segment, error)
	BySegment(seg *entities.Segment) ([]entities.Contact, error)
}
