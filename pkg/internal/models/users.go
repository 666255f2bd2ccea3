package models

type User struct {
	BaseModel

	Name  string `json:"name" gorm:"uniqueIndex"`
	Nick  string `json:"nick"`
	Email string `json:"email"`
}
