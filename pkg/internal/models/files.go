package models

import "gorm.io/datatypes"

type File struct {
	BaseModel

	Name     string            `json:"name"`
	URL      string            `json:"url"`
	Mimetype string            `json:"mimetype"`
	Size     int64             `json:"size"`
	Metadata datatypes.JSONMap `json:"metadata"`
	UserID   uint              `json:"user_id"`
}
