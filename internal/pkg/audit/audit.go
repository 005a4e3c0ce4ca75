// Package audit appends immutable action records for every state-changing
// admin request.
package audit

import (
	"github.com/widyalab/landing-api/internal/models"
	"gorm.io/gorm"
)

// Action tags for log entries.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Actor identifies the admin performing a mutation.
type Actor struct {
	ID       uint
	Username string
}

// Recorder writes log rows. The write is awaited: a logging failure surfaces
// as a request failure even though the mutation already committed.
type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// Record appends one log entry with a server-side timestamp.
func (r *Recorder) Record(actorID uint, action Action, targetTable string, targetID uint, description string) error {
	entry := models.LogModel{
		Action:      string(action),
		TargetTable: targetTable,
		TargetID:    targetID,
		Description: description,
	}
	if actorID != 0 {
		id := actorID
		entry.IDAdmin = &id
	}
	return r.db.Create(&entry).Error
}
