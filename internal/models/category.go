package models

// CategoryModel is a reference entity grouping projects.
type CategoryModel struct {
	Base
	Name string `json:"name" gorm:"size:255;not null"`
}

func (CategoryModel) TableName() string { return "category" }
