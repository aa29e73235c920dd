package card

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the board column a card sits in.
type Status string

const (
	StatusInbox   Status = "INBOX"
	StatusToday   Status = "TODAY"
	StatusWaiting Status = "WAITING"
	StatusDone    Status = "DONE"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusInbox, StatusToday, StatusWaiting, StatusDone:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalid, s)
}

type Card struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"index;not null;type:uuid" json:"userId"`
	Title     string    `gorm:"not null" json:"title"`
	Notes     *string   `json:"notes"`
	Tag       *string   `json:"tag"`
	Status    Status    `gorm:"not null" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
