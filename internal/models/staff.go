package models

// StaffModel represents a staff member shown on the landing page.
type StaffModel struct {
	Base
	Name        string  `json:"name"         gorm:"size:255;not null"`
	Position    string  `json:"position"     gorm:"size:255"`
	Description string  `json:"description"  gorm:"type:text"`
	Education   string  `json:"education"    gorm:"size:255"`
	Publication string  `json:"publication"  gorm:"type:text"`
	Email       string  `json:"email"        gorm:"size:255"`
	Linkedin    string  `json:"linkedin"     gorm:"size:255"`
	SocialMedia string  `json:"social_media" gorm:"column:social_media;size:255"`
	ImagePath   *string `json:"image_path"   gorm:"column:image_path;size:255"`
}

func (StaffModel) TableName() string { return "staff" }
