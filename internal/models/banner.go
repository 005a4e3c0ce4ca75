package models

// BannerModel is a landing-page banner image.
type BannerModel struct {
	Base
	ImagePath *string `json:"image_path" gorm:"column:image_path;size:255"`
}

func (BannerModel) TableName() string { return "banner" }
