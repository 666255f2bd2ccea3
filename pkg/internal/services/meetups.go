package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"git.solsynth.dev/hypernet/meetup/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type MeetUpEventPublisher interface {
	PublishMeetUpCreated(ctx context.Context, item models.MeetUp) error
}

// MeetUpPayload holds the only fields a client may set when creating a meetup.
// The owner always comes from the session.
type MeetUpPayload struct {
	CategoryID  uint      `json:"id_category" validate:"required"`
	FileID      *uint     `json:"file_id"`
	DateEvent   time.Time `json:"date_event" validate:"required"`
	Location    string    `json:"location" validate:"required,max=256"`
	Title       string    `json:"title" validate:"required,max=256"`
	Description string    `json:"description" validate:"required"`
}

// MeetUpDetail is a meetup annotated with its subscription count.
type MeetUpDetail struct {
	models.MeetUp
	QtdSubscriptions int64 `json:"qtd_subscriptions"`
}

type MeetUpService struct {
	db     *gorm.DB
	events MeetUpEventPublisher
}

func NewMeetUpService(db *gorm.DB, events MeetUpEventPublisher) *MeetUpService {
	return &MeetUpService{db: db, events: events}
}

func (v *MeetUpService) ListMeetUp(ctx context.Context, filter MeetUpFilter) ([]models.MeetUp, error) {
	items := make([]models.MeetUp, 0)
	if err := filter.Apply(v.db.WithContext(ctx)).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("unable to list meetups: %w", err)
	}
	return items, nil
}

func (v *MeetUpService) ListAll(ctx context.Context) ([]models.MeetUp, error) {
	return v.ListMeetUp(ctx, MeetUpFilter{WithUser: true})
}

func (v *MeetUpService) ListUnsubscribed(ctx context.Context, user uint) ([]models.MeetUp, error) {
	return v.ListMeetUp(ctx, MeetUpFilter{
		NotSubscribedBy: &user,
		GroupByID:       true,
	})
}

func (v *MeetUpService) ListSubscribed(ctx context.Context, user uint) ([]models.MeetUp, error) {
	return v.ListMeetUp(ctx, MeetUpFilter{
		SubscribedBy: &user,
		GroupByID:    true,
	})
}

// ListRecommended returns the meetups the user has not joined yet
// whose category is one of the user's preferences.
func (v *MeetUpService) ListRecommended(ctx context.Context, user uint) ([]models.MeetUp, error) {
	return v.ListMeetUp(ctx, MeetUpFilter{
		NotSubscribedBy: &user,
		PreferredBy:     &user,
		GroupByID:       true,
	})
}

func (v *MeetUpService) CountSubscriptions(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := v.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("meetup_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("unable to count subscriptions: %w", err)
	}
	return count, nil
}

// GetByID returns at most one meetup. A missing id yields an empty slice.
func (v *MeetUpService) GetByID(ctx context.Context, id uint) ([]MeetUpDetail, error) {
	count, err := v.CountSubscriptions(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := v.ListMeetUp(ctx, MeetUpFilter{ID: &id, WithFile: true})
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(item models.MeetUp, _ int) MeetUpDetail {
		return MeetUpDetail{MeetUp: item, QtdSubscriptions: count}
	}), nil
}

func (v *MeetUpService) GetByTitle(ctx context.Context, title string) ([]models.MeetUp, error) {
	return v.ListMeetUp(ctx, MeetUpFilter{Title: &title, WithFile: true})
}

func (v *MeetUpService) GetSubscribedByTitle(ctx context.Context, title string, user uint) ([]models.MeetUp, error) {
	return v.ListMeetUp(ctx, MeetUpFilter{
		Title:              &title,
		JoinSubscriptionOf: &user,
		WithFile:           true,
	})
}

func (v *MeetUpService) GetRecommendedByTitle(ctx context.Context, title string, user uint) ([]models.MeetUp, error) {
	return v.ListMeetUp(ctx, MeetUpFilter{
		Title:           &title,
		PreferredBy:     &user,
		NotSubscribedBy: &user,
		WithFile:        true,
	})
}

// Create inserts the meetup on behalf of user inside one transaction.
func (v *MeetUpService) Create(ctx context.Context, user uint, payload MeetUpPayload) (models.MeetUp, error) {
	item := models.MeetUp{
		Title:       payload.Title,
		Description: payload.Description,
		Location:    payload.Location,
		DateEvent:   payload.DateEvent,
		CategoryID:  payload.CategoryID,
		FileID:      payload.FileID,
		UserID:      user,
		Language:    DetectLanguage(payload.Title + "\n" + payload.Description),
	}

	err := v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Category{}, payload.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}
		if payload.FileID != nil {
			if err := tx.First(&models.File{}, *payload.FileID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrFileNotFound
				}
				return err
			}
		}

		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return tx.Preload("File").First(&item, item.ID).Error
	})
	if err != nil {
		return item, fmt.Errorf("unable to create meetup: %w", err)
	}

	if v.events != nil {
		if err := v.events.PublishMeetUpCreated(ctx, item); err != nil {
			log.Warn().Err(err).Uint("meetup", item.ID).Msg("An error occurred when publishing meetup event...")
		}
	}

	return item, nil
}
