package models

// PartnerModel represents a partner organization shown on the landing page.
type PartnerModel struct {
	Base
	Name        string  `json:"name"        gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Link        string  `json:"link"        gorm:"size:255"`
	Logo        *string `json:"logo"        gorm:"size:255"`
}

func (PartnerModel) TableName() string { return "partnership" }
