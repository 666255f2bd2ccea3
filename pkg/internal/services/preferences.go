package services

import (
	"context"
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/meetup/pkg/internal/models"
	"gorm.io/gorm"
)

type PreferenceService struct {
	db *gorm.DB
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

func (v *PreferenceService) ListPreference(ctx context.Context, user uint) ([]models.Preference, error) {
	preferences := make([]models.Preference, 0)
	if err := v.db.WithContext(ctx).
		Where("user_id = ?", user).
		Preload("Category").
		Order("pref_id ASC").
		Find(&preferences).Error; err != nil {
		return nil, fmt.Errorf("unable to list preferences: %w", err)
	}
	return preferences, nil
}

func (v *PreferenceService) AddPreference(ctx context.Context, user, category uint) (models.Preference, error) {
	preference := models.Preference{
		UserID: user,
		PrefID: category,
	}

	err := v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Category{}, category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Preference{}).
			Where("user_id = ? AND pref_id = ?", user, category).
			Count(&count).Error; err != nil {
			return err
		} else if count > 0 {
			return ErrPreferenceExists
		}

		return tx.Create(&preference).Error
	})
	if err != nil {
		return preference, fmt.Errorf("unable to add preference: %w", err)
	}

	return preference, nil
}

func (v *PreferenceService) RemovePreference(ctx context.Context, user, category uint) error {
	tx := v.db.WithContext(ctx).
		Where("user_id = ? AND pref_id = ?", user, category).
		Delete(&models.Preference{})
	if tx.Error != nil {
		return fmt.Errorf("unable to remove preference: %w", tx.Error)
	} else if tx.RowsAffected == 0 {
		return ErrPreferenceNotExists
	}
	return nil
}
