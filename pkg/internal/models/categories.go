package models

type Category struct {
	BaseModel

	Alias       string `json:"alias" gorm:"uniqueIndex" validate:"required,lowercase,alphanum"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
