package models

// Subscription is a user's enrollment in a meetup.
type Subscription struct {
	BaseModel

	UserID   uint    `json:"user_id" gorm:"index"`
	User     *User   `json:"user,omitempty"`
	MeetUpID uint    `json:"meetup_id" gorm:"column:meetup_id;index"`
	MeetUp   *MeetUp `json:"meetup,omitempty" gorm:"foreignKey:MeetUpID"`
}

func (Subscription) TableName() string {
	return "user_subscriptions"
}

// Preference marks the interest of a user in a meetup category.
type Preference struct {
	BaseModel

	UserID   uint      `json:"user_id" gorm:"index"`
	PrefID   uint      `json:"pref_id" gorm:"index"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:PrefID"`
}

func (Preference) TableName() string {
	return "user_preferences"
}
