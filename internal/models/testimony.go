package models

// TestimonyModel is an intern testimonial with a 1-5 rating.
type TestimonyModel struct {
	Base
	IDIntern uint   `json:"id_intern" gorm:"column:id_intern;index;not null"`
	Content  string `json:"content"   gorm:"type:text"`
	Rating   int    `json:"rating"    gorm:"not null"`

	Intern *InternModel `json:"-" gorm:"foreignKey:IDIntern;constraint:OnDelete:CASCADE"`
}

func (TestimonyModel) TableName() string { return "testimony" }
