package services

import (
	"context"
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/meetup/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

func (v *SubscriptionService) GetSubscriptionOnMeetUp(ctx context.Context, user, meetup uint) (*models.Subscription, error) {
	var subscription models.Subscription
	if err := v.db.WithContext(ctx).
		Where("user_id = ? AND meetup_id = ?", user, meetup).
		First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get subscription: %w", err)
	}
	return &subscription, nil
}

func (v *SubscriptionService) ListSubscribedIDs(ctx context.Context, user uint) ([]uint, error) {
	var subscriptions []models.Subscription
	if err := v.db.WithContext(ctx).
		Where("user_id = ?", user).
		Select("meetup_id").
		Find(&subscriptions).Error; err != nil {
		return nil, fmt.Errorf("unable to list subscriptions: %w", err)
	}
	return lo.Uniq(lo.Map(subscriptions, func(item models.Subscription, _ int) uint {
		return item.MeetUpID
	})), nil
}

func (v *SubscriptionService) SubscribeToMeetUp(ctx context.Context, user, meetup uint) (models.Subscription, error) {
	subscription := models.Subscription{
		UserID:   user,
		MeetUpID: meetup,
	}

	err := v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.MeetUp{}, meetup).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMeetUpNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Subscription{}).
			Where("user_id = ? AND meetup_id = ?", user, meetup).
			Count(&count).Error; err != nil {
			return err
		} else if count > 0 {
			return ErrAlreadySubscribed
		}

		return tx.Create(&subscription).Error
	})
	if err != nil {
		return subscription, fmt.Errorf("unable to subscribe: %w", err)
	}

	return subscription, nil
}

func (v *SubscriptionService) UnsubscribeFromMeetUp(ctx context.Context, user, meetup uint) error {
	tx := v.db.WithContext(ctx).
		Where("user_id = ? AND meetup_id = ?", user, meetup).
		Delete(&models.Subscription{})
	if tx.Error != nil {
		return fmt.Errorf("unable to unsubscribe: %w", tx.Error)
	} else if tx.RowsAffected == 0 {
		return ErrNotSubscribed
	}
	return nil
}
