package card

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")
var ErrInvalid = errors.New("invalid input")

// Service is ownership-scoped card CRUD. Every query filters by the
// authenticated user's id; a card owned by someone else looks absent.
type Service struct {
	DB *gorm.DB
}

type CreateCardInput struct {
	Title string
	Notes *string
	Tag   *string
}

// UpdateCardInput carries a partial update. Nil pointer fields are left
// untouched; NotesSet/TagSet distinguish an explicit null (clear the
// column) from an absent key.
type UpdateCardInput struct {
	Title    *string
	Notes    *string
	NotesSet bool
	Tag      *string
	TagSet   bool
	Status   *Status
}

func (s *Service) List(ctx context.Context, userID string) ([]Card, error) {
	var cards []Card
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// Create always starts a card in INBOX, whatever the caller asked for.
func (s *Service) Create(ctx context.Context, userID string, in CreateCardInput) (Card, error) {
	if err := validateTitle(in.Title); err != nil {
		return Card{}, err
	}
	if err := validateNotes(in.Notes); err != nil {
		return Card{}, err
	}
	if err := validateTag(in.Tag); err != nil {
		return Card{}, err
	}

	now := time.Now()
	c := Card{
		UserID:    userID,
		Title:     in.Title,
		Notes:     in.Notes,
		Tag:       in.Tag,
		Status:    StatusInbox,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.DB.WithContext(ctx).Create(&c).Error; err != nil {
		return Card{}, err
	}
	return c, nil
}

// Update is a single conditional statement scoped by id and owner;
// zero affected rows means the card is absent or not ours.
func (s *Service) Update(ctx context.Context, userID, cardID string, in UpdateCardInput) (Card, error) {
	updates := map[string]any{}

	if in.Title != nil {
		if err := validateTitle(*in.Title); err != nil {
			return Card{}, err
		}
		updates["title"] = *in.Title
	}
	if in.NotesSet {
		if err := validateNotes(in.Notes); err != nil {
			return Card{}, err
		}
		updates["notes"] = in.Notes
	}
	if in.TagSet {
		if err := validateTag(in.Tag); err != nil {
			return Card{}, err
		}
		updates["tag"] = in.Tag
	}
	if in.Status != nil {
		if _, err := ParseStatus(string(*in.Status)); err != nil {
			return Card{}, err
		}
		updates["status"] = *in.Status
	}
	updates["updated_at"] = time.Now()

	res := s.DB.WithContext(ctx).Model(&Card{}).
		Where("id = ? AND user_id = ?", cardID, userID).
		Updates(updates)
	if res.Error != nil {
		return Card{}, res.Error
	}
	if res.RowsAffected == 0 {
		return Card{}, ErrNotFound
	}

	var c Card
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", cardID, userID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Card{}, ErrNotFound
		}
		return Card{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, userID, cardID string) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", cardID, userID).
		Delete(&Card{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
