package models

// AgendaModel represents a scheduled agenda item.
type AgendaModel struct {
	Base
	Title     string  `json:"title"      gorm:"size:255;not null"`
	Slug      string  `json:"slug"       gorm:"size:255;not null;index"`
	Content   string  `json:"content"    gorm:"type:text"`
	Date      string  `json:"date"       gorm:"size:64"`
	ImagePath *string `json:"image_path" gorm:"column:image_path;size:255"`
}

func (AgendaModel) TableName() string { return "agenda" }
