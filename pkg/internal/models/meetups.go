package models

import "time"

type MeetUp struct {
	BaseModel

	Title       string    `json:"title" gorm:"index"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Language    string    `json:"language"`
	DateEvent   time.Time `json:"date_event"`

	CategoryID uint      `json:"id_category" gorm:"column:id_category;index"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	FileID     *uint     `json:"file_id"`
	File       *File     `json:"file,omitempty"`
	UserID     uint      `json:"user_id" gorm:"index"`
	User       *User     `json:"user,omitempty"`
}
