package models

// InternModel represents an intern profile.
type InternModel struct {
	Base
	Name        string  `json:"name"         gorm:"size:255;not null"`
	Role        string  `json:"role"         gorm:"size:50;not null"`
	University  string  `json:"university"   gorm:"size:255"`
	Major       string  `json:"major"        gorm:"size:255"`
	Email       string  `json:"email"        gorm:"size:255"`
	Contact     string  `json:"contact"      gorm:"size:50"`
	Linkedin    string  `json:"linkedin"     gorm:"size:255"`
	SocialMedia string  `json:"social_media" gorm:"column:social_media;size:255"`
	ImagePath   *string `json:"image_path"   gorm:"column:image_path;size:255"`
}

func (InternModel) TableName() string { return "intern" }
