package models

// StatisticModel is a named counter shown on the landing page
// (e.g. number of alumni, ongoing projects).
type StatisticModel struct {
	Base
	Name  string `json:"name"  gorm:"size:255;not null"`
	Value string `json:"value" gorm:"size:255;not null"`
}

func (StatisticModel) TableName() string { return "statistic_data" }
