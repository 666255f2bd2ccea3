package services

import (
	"git.solsynth.dev/hypernet/meetup/pkg/internal/models"
	"gorm.io/gorm"
)

// MeetUpFilter describes which meetups a query should return.
// Nil fields are not applied. Apply translates the whole filter into a
// single gorm statement, the subscription and preference sets become
// subqueries so the store resolves them in one round trip.
type MeetUpFilter struct {
	ID    *uint
	Title *string

	SubscribedBy       *uint
	NotSubscribedBy    *uint
	PreferredBy        *uint
	JoinSubscriptionOf *uint

	WithUser  bool
	WithFile  bool
	GroupByID bool
}

// Apply scopes tx to the meetups matched by the filter.
func (f MeetUpFilter) Apply(tx *gorm.DB) *gorm.DB {
	tx = tx.Model(&models.MeetUp{}).Select("meet_ups.*")

	if f.ID != nil {
		tx = tx.Where("meet_ups.id = ?", *f.ID)
	}
	if f.Title != nil {
		tx = FilterMeetUpWithTitle(tx, *f.Title)
	}
	if f.JoinSubscriptionOf != nil {
		tx = FilterMeetUpJoinSubscription(tx, *f.JoinSubscriptionOf)
	}
	if f.SubscribedBy != nil {
		tx = FilterMeetUpSubscribed(tx, *f.SubscribedBy)
	}
	if f.NotSubscribedBy != nil {
		tx = FilterMeetUpNotSubscribed(tx, *f.NotSubscribedBy)
	}
	if f.PreferredBy != nil {
		tx = FilterMeetUpWithPreference(tx, *f.PreferredBy)
	}

	// The join fans out when a user holds more than one subscription row
	if f.GroupByID || f.JoinSubscriptionOf != nil {
		tx = tx.Group("meet_ups.id")
	}

	if f.WithUser {
		tx = tx.Preload("User")
	}
	if f.WithFile {
		tx = tx.Preload("File")
	}

	return tx.Order("meet_ups.id ASC")
}

func subscribedMeetUpIDs(tx *gorm.DB, user uint) *gorm.DB {
	return tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.Subscription{}).
		Select("meetup_id").
		Where("user_id = ?", user)
}

func preferredCategoryIDs(tx *gorm.DB, user uint) *gorm.DB {
	return tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.Preference{}).
		Select("pref_id").
		Where("user_id = ?", user)
}

func FilterMeetUpWithTitle(tx *gorm.DB, title string) *gorm.DB {
	return tx.Where("meet_ups.title = ?", title)
}

func FilterMeetUpSubscribed(tx *gorm.DB, user uint) *gorm.DB {
	return tx.Where("meet_ups.id IN (?)", subscribedMeetUpIDs(tx, user))
}

func FilterMeetUpNotSubscribed(tx *gorm.DB, user uint) *gorm.DB {
	return tx.Where("meet_ups.id NOT IN (?)", subscribedMeetUpIDs(tx, user))
}

func FilterMeetUpWithPreference(tx *gorm.DB, user uint) *gorm.DB {
	return tx.Where("meet_ups.id_category IN (?)", preferredCategoryIDs(tx, user))
}

func FilterMeetUpJoinSubscription(tx *gorm.DB, user uint) *gorm.DB {
	return tx.
		Joins("JOIN user_subscriptions ON user_subscriptions.meetup_id = meet_ups.id AND user_subscriptions.deleted_at IS NULL").
		Where("user_subscriptions.user_id = ?", user)
}
