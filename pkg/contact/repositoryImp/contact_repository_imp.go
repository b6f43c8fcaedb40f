package repositoryImp

import (
	"gorm.io/gorm"

	"clubchat/entities"
	"clubchat/pkg/contact/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ContactRepository { return &repo{db} }

func (r *repo) Create(c *entities.Contact) error { return r.db.Create(c).Error }
func (r *repo) Update(c *entities.Contact) error { return r.db.Save(c).Error }

func (r *repo) ByID(id uint) (*entities.Contact, error) {
	var c entities.Contact
	if err := r.db.First(&c, "contact_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) ByEmail(email string) (*entities.Contact, error) {
	var c entities.Contact
	if err := r.db.First(&c, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) List(search, tag string) ([]entities.Contact, error) {
	q := r.db.Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like, like)
	}
	var cs []entities.Contact
	if err := q.Find(&cs).Error; err != nil {
		return nil, err
	}
	if tag == "" {
		return cs, nil
	}
	// tags live in a JSON column; filter in memory
	out := cs[:0]
	for _, c := range cs {
		for _, t := range c.Tags {
			if t == tag {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *repo) SegmentByID(id uint) (*entities.Segment, error) {
	var s entities.Segment
	if err := r.db.First(&s, "segment_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// BySegment resolves a segment's contacts. Rules support a single tag match,
// which is all the admin UI ever produced.
func (r *repo) BySegment(seg *entities.Segment) ([]entities.Contact, error) {
	tag := ""
	if seg.Rules != nil {
		if v, ok := seg.Rules["tag"].(string); ok {
			tag = v
		}
	}
	return r.List("", tag)
}
