package models

// NewsModel represents a news article ("berita").
type NewsModel struct {
	Base
	Title     string  `json:"title"      gorm:"size:255;not null"`
	Slug      string  `json:"slug"       gorm:"size:255;not null;index"`
	Content   string  `json:"content"    gorm:"type:text"`
	Author    string  `json:"author"     gorm:"size:255"`
	Date      string  `json:"date"       gorm:"size:64"`
	ImagePath *string `json:"image_path" gorm:"column:image_path;size:255"`
}

func (NewsModel) TableName() string { return "news" }
