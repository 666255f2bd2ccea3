package database

import (
	"git.solsynth.dev/hypernet/meetup/pkg/internal/models"
	"gorm.io/gorm"
)

// AutoMaintainRange lists the tables swept by the soft-delete cleanup,
// dependents first.
var AutoMaintainRange = []any{
	&models.Subscription{},
	&models.Preference{},
	&models.MeetUp{},
	&models.Category{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			[]any{&models.User{}, &models.File{}},
			AutoMaintainRange...,
		)...,
	); err != nil {
		return err
	}

	return nil
}
