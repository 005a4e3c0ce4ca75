package models

import "time"

// LogModel is an append-only audit record of admin-attributed state changes.
// Rows are never updated or deleted by the API; the admin reference survives
// admin deletion via SET NULL.
type LogModel struct {
	ID          uint       `json:"id"           gorm:"primaryKey;autoIncrement"`
	IDAdmin     *uint      `json:"id_admin"     gorm:"column:id_admin;index"`
	Action      string     `json:"action"       gorm:"size:255;not null"`
	TargetTable string     `json:"target_table" gorm:"column:target_table;size:255"`
	TargetID    uint       `json:"target_id"    gorm:"column:target_id"`
	Description string     `json:"description"  gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at"`
	Admin       *AdminModel `json:"-" gorm:"foreignKey:IDAdmin;constraint:OnDelete:SET NULL"`
}

func (LogModel) TableName() string { return "logs" }
