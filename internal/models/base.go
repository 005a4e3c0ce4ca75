package models

import "time"

// Base is the base model for all content entities. IDs are auto-incremented
// integers matching the relational schema.
type Base struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID satisfies the crud entity contract.
func (b Base) GetID() uint { return b.ID }
