package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"git.solsynth.dev/hypernet/meetup/pkg/internal/database"
	"git.solsynth.dev/hypernet/meetup/pkg/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDatabaseSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_%d?mode=memory&cache=shared", testDatabaseSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.RunMigration(db); err != nil {
		t.Fatalf("run migration: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{Name: name, Nick: name}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, alias string) models.Category {
	t.Helper()
	category := models.Category{Alias: alias, Name: alias}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

func seedMeetUp(t *testing.T, db *gorm.DB, owner models.User, category models.Category, title string) models.MeetUp {
	t.Helper()
	item := models.MeetUp{
		Title:       title,
		Description: "About " + title,
		Location:    "Main hall",
		DateEvent:   time.Date(2026, 11, 1, 18, 0, 0, 0, time.UTC),
		CategoryID:  category.ID,
		UserID:      owner.ID,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create meetup: %v", err)
	}
	return item
}

func seedSubscription(t *testing.T, db *gorm.DB, user models.User, item models.MeetUp) models.Subscription {
	t.Helper()
	subscription := models.Subscription{UserID: user.ID, MeetUpID: item.ID}
	if err := db.Create(&subscription).Error; err != nil {
		t.Fatalf("create subscription: %v", err)
	}
	return subscription
}

func seedPreference(t *testing.T, db *gorm.DB, user models.User, category models.Category) {
	t.Helper()
	if err := db.Create(&models.Preference{UserID: user.ID, PrefID: category.ID}).Error; err != nil {
		t.Fatalf("create preference: %v", err)
	}
}

func meetUpIDs(items []models.MeetUp) []uint {
	out := make([]uint, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
